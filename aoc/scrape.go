package aoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractAnswers pulls previously submitted answers out of a puzzle
// page: the <code> element of each paragraph reading "Your puzzle
// answer was ...", in document order.
func extractAnswers(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" &&
			strings.Contains(nodeText(n), "Your puzzle answer was") {
			if code := findElement(n, "code"); code != nil {
				out = append(out, strings.TrimSpace(nodeText(code)))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
