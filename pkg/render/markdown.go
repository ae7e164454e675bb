// Package render turns cleaned post content into Markdown and inspects the result.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// paragraphTag marks content as HTML. Plain text posts never carry it.
const paragraphTag = "<p"

// md is the goldmark parser used to inspect generated Markdown
var md goldmark.Markdown

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // GitHub Flavored Markdown
		),
	)
}

// IsHTML reports whether content contains paragraph markup.
func IsHTML(content string) bool {
	return strings.Contains(content, paragraphTag)
}

// ToMarkdown converts HTML content to Markdown. Content without paragraph
// markup is returned as is. Either way leading blanks are stripped from
// every line.
func ToMarkdown(content string) (string, error) {
	if IsHTML(content) {
		converted, err := htmltomarkdown.ConvertString(content)
		if err != nil {
			return "", fmt.Errorf("converting HTML to markdown: %w", err)
		}
		content = converted
	}
	return StripLeadingBlanks(content), nil
}

// StripLeadingBlanks removes spaces and tabs at the start of every line.
// Line terminators are kept as they are.
func StripLeadingBlanks(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lineStart := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !lineStart || (r != ' ' && r != '\t') {
			b.WriteString(s[i : i+size])
			lineStart = isLineBreak(r)
		}
		i += size
	}
	return b.String()
}

// isLineBreak matches the terminators a line split honours, including
// NEL and the Unicode line and paragraph separators that entity decoding
// can produce.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Stats describes a Markdown document.
type Stats struct {
	Words    int `json:"words"`
	Headings int `json:"headings"`
	Links    int `json:"links"`
	Images   int `json:"images"`
}

// Inspect parses markdown and counts its words, headings, links and images.
func Inspect(markdown string) Stats {
	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var s Stats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			s.Headings++
		case *ast.Link, *ast.AutoLink:
			s.Links++
		case *ast.Image:
			s.Images++
		case *ast.Text:
			s.Words += len(strings.Fields(string(n.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	return s
}
