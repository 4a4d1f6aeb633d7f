package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads validated values from an interactive stream, re-asking on
// bad input rather than failing. EOF yields the zero value so a closed stdin
// cannot loop forever.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) read(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Bool accepts yes/y/true and no/n/false, case-insensitive.
func (p *prompter) Bool(label string) bool {
	for {
		answer, ok := p.read(label)
		if !ok {
			return false
		}
		switch strings.ToLower(answer) {
		case "yes", "y", "true":
			return true
		case "no", "n", "false":
			return false
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// Int reads an integer no smaller than min.
func (p *prompter) Int(label string, min int) int {
	for {
		answer, ok := p.read(label)
		if !ok {
			return min
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= min {
			return n
		}
		fmt.Fprintf(p.out, "Please enter a whole number >= %d.\n", min)
	}
}

// Float reads any finite number; empty input means zero.
func (p *prompter) Float(label string) float64 {
	for {
		answer, ok := p.read(label)
		if !ok {
			return 0
		}
		if answer == "" {
			return 0
		}
		f, err := strconv.ParseFloat(answer, 64)
		if err == nil {
			return f
		}
		fmt.Fprintln(p.out, "Please enter a number.")
	}
}
