package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Block elements become lines and list items
// become "- " bullets; scripts, styles and navigation are dropped.
type HTMLParser struct{}

func (p *HTMLParser) Extract(r io.Reader, filename string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			appendLines(&lines, n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "nav", "noscript", "template":
				return
			case "li":
				if t := collapseSpace(textContent(n, true)); t != "" {
					lines = append(lines, "- "+t)
				}
				// Nested lists still contribute their own items.
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if isList(c) {
						walk(c)
					}
				}
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "td", "th", "dt", "dd", "address":
				appendLines(&lines, textContent(n, false))
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return strings.Join(lines, "\n"), nil
}

// textContent concatenates the text under n, turning <br> into newlines.
// With skipLists set, nested ul/ol subtrees are left out.
func textContent(n *html.Node, skipLists bool) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && n.Data == "br":
			buf.WriteByte('\n')
			return
		case skipLists && isList(n):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return strings.TrimSpace(buf.String())
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
