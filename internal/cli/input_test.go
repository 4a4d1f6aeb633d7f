package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompter_Bool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"short yes", "y\n", true},
		{"true", "TRUE\n", true},
		{"no", "no\n", false},
		{"reprompts on garbage", "maybe\nyes\n", true},
		{"eof defaults to false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)
			if got := p.Bool("? "); got != tt.want {
				t.Errorf("Bool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompter_Int(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("abc\n-3\n5\n"), &out)

	if got := p.Int("n: ", 0); got != 5 {
		t.Errorf("Int() = %d, want 5 after re-prompts", got)
	}
	if !strings.Contains(out.String(), "whole number") {
		t.Error("Expected re-prompt message for invalid input")
	}
}

func TestPrompter_Float(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("x\n12.5\n"), &out)

	if got := p.Float("f: "); got != 12.5 {
		t.Errorf("Float() = %v, want 12.5", got)
	}

	p = newPrompter(strings.NewReader("\n"), &out)
	if got := p.Float("f: "); got != 0 {
		t.Errorf("Float() on empty input = %v, want 0", got)
	}
}
