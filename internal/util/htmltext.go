package util

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText reduces scraped review markup to its visible text, skipping
// script/style content. Plain text (no markup) passes through with only
// whitespace normalization.
func VisibleText(content string) string {
	if !strings.ContainsRune(content, '<') {
		return strings.Join(strings.Fields(content), " ")
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String()
}
