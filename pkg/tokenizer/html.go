package tokenizer

import (
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockElements end a run of text; their content never merges with a neighbour.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "caption": true, "dd": true, "details": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"summary": true, "table": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "tr": true, "ul": true,
}

// IsHTMLPath reports whether path looks like an HTML document.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// FromHTML extracts the visible text of an HTML document so it can be
// tokenized. With articleOnly set, go-readability first isolates the main
// article; when it finds none the whole body is used.
func FromHTML(html []byte, pageURL string, articleOnly bool) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	source := html
	if articleOnly {
		rp := readability.NewParser()
		article, err := rp.Parse(bytes.NewReader(html), parsedURL)
		if err == nil && strings.TrimSpace(article.Content) != "" {
			source = []byte(article.Content)
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script,style,noscript,template").Remove()

	var sb strings.Builder
	writeText(&sb, doc.Find("body"))
	return sb.String(), nil
}

// writeText appends every text node under sel, with a newline around each
// block element so words at their edges do not merge.
func writeText(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			sb.WriteString(node.Text())
		case name == "#comment":
		case blockElements[name]:
			sb.WriteString("\n")
			writeText(sb, node)
			sb.WriteString("\n")
		default:
			writeText(sb, node)
		}
	})
}

// FileURL builds the URL go-readability uses to resolve relative links in a local file.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}
