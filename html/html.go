package html

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Directional isolate code points synthesized for dir attributes.
const (
	lri = '\u2066'
	rli = '\u2067'
	fsi = '\u2068'
	pdi = '\u2069'
)

// Runes flattens the textual content of an HTML fragment into a rune
// sequence suitable for bidi classification. Elements carrying a `dir´
// attribute are wrapped in directional isolates, following the HTML5
// mapping of dir onto the Unicode Bidirectional Algorithm:
//
//	dir="ltr"  →  LRI … PDI
//	dir="rtl"  →  RLI … PDI
//	dir="auto" →  FSI … PDI
//
// The element structure itself is discarded, comparable to what
// document.body.innerText yields in a browser (except that no CSS is
// consulted).
func Runes(input io.Reader) ([]rune, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse HTML fragment")
	}
	var text []rune
	for _, n := range nodes {
		text = collect(n, text)
	}
	tracer().Debugf("extracted %d runes from HTML fragment", len(text))
	return text, nil
}

// Text is a convenience wrapper around Runes for string input.
func Text(fragment string) ([]rune, error) {
	return Runes(strings.NewReader(fragment))
}

func collect(n *html.Node, text []rune) []rune {
	if n.Type == html.TextNode {
		return append(text, []rune(n.Data)...)
	}
	var isolate rune
	if n.Type == html.ElementNode {
		isolate = isolateFor(n)
	}
	if isolate != 0 {
		text = append(text, isolate)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text = collect(c, text)
	}
	if isolate != 0 {
		text = append(text, pdi)
	}
	return text
}

func isolateFor(n *html.Node) rune {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, "dir") {
			switch strings.ToLower(attr.Val) {
			case "ltr":
				return lri
			case "rtl":
				return rli
			case "auto":
				return fsi
			}
		}
	}
	return 0
}
