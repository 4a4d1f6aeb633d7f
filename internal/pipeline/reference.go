package pipeline

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/civmods/forceval/internal/model"
	"golang.org/x/net/html"
)

// DecodeUnits parses a Units.json corpus into unit definitions.
func DecodeUnits(body []byte) ([]model.UnitStats, error) {
	var units []model.UnitStats
	if err := json.Unmarshal(body, &units); err != nil {
		return nil, fmt.Errorf("decode units corpus: %w", err)
	}
	return units, nil
}

// The reference document lists documented forces as backticked
// "`Unit Name 123`" tokens.
var expectedRe = regexp.MustCompile("`([^`]+?)\\s+(\\d+)`")

var nameValueRe = regexp.MustCompile(`^(.+?)\s+(\d+)$`)

// ParseExpected extracts the documented unit forces from the reference
// document. Markdown is scanned for backticked name/value tokens; when the
// server returns rendered HTML instead, code elements take the place of the
// backticks.
func ParseExpected(body []byte, contentType string) map[string]float64 {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return expectedFromHTML(body)
	}
	return expectedFromMarkdown(string(body))
}

func expectedFromMarkdown(text string) map[string]float64 {
	expected := make(map[string]float64)
	for _, m := range expectedRe.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		expected[strings.TrimSpace(m[1])] = value
	}
	return expected
}

func expectedFromHTML(body []byte) map[string]float64 {
	expected := make(map[string]float64)

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return expected
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "code" || n.Data == "pre") {
			text := strings.TrimSpace(nodeText(n))
			if m := nameValueRe.FindStringSubmatch(text); m != nil {
				if value, err := strconv.ParseFloat(m[2], 64); err == nil {
					expected[strings.TrimSpace(m[1])] = value
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return expected
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
