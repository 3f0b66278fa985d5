package button_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func render(t *testing.T, c templ.Component) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	return buf.String(), err
}

// renderElements renders c and returns the top level elements of the output.
func renderElements(t *testing.T, c templ.Component) []*html.Node {
	t.Helper()

	out, err := render(t, c)
	require.NoError(t, err)

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(out), body)
	require.NoError(t, err)

	var elements []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	return elements
}

func renderElement(t *testing.T, c templ.Component) *html.Node {
	t.Helper()

	elements := renderElements(t, c)
	require.Len(t, elements, 1)
	return elements[0]
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func classTokens(n *html.Node) []string {
	class, _ := attr(n, "class")
	return strings.Fields(class)
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
