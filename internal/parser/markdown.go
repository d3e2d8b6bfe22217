package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings and
// paragraph lines come out as plain lines, list items as "- " bullets.
type MarkdownParser struct{}

func (p *MarkdownParser) Extract(r io.Reader, filename string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	src := []byte(Decode(raw))

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	collectBlocks(doc, src, &lines)
	return strings.Join(lines, "\n"), nil
}

func collectBlocks(parent ast.Node, src []byte, lines *[]string) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			appendLines(lines, inlineText(node, src))
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				collectListItem(item, src, lines)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			appendLines(lines, rawText(node, src))
		case *ast.Blockquote:
			collectBlocks(node, src, lines)
		}
	}
}

func collectListItem(item ast.Node, src []byte, lines *[]string) {
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.List:
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				collectListItem(li, src, lines)
			}
		case *ast.Paragraph, *ast.TextBlock:
			if t := collapseSpace(inlineText(node, src)); t != "" {
				*lines = append(*lines, "- "+t)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			appendLines(lines, rawText(node, src))
		}
	}
}

// inlineText gets the text content of a block's inline children, keeping
// soft and hard line breaks as newlines.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeInline(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func writeInline(buf *bytes.Buffer, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.Label(src))
		default:
			writeInline(buf, c, src)
		}
	}
}

func rawText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

// appendLines splits s on newlines and appends the non-blank, trimmed lines.
func appendLines(lines *[]string, s string) {
	for _, ln := range strings.Split(s, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			*lines = append(*lines, ln)
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
