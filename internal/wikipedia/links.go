package wikipedia

import (
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DefaultMaxLinks bounds how many distinct links are taken from one article.
const DefaultMaxLinks = 50

// ExtractLinks scans article HTML and returns up to limit distinct article
// titles in document order.
func ExtractLinks(r io.Reader, limit int) []string {
	z := html.NewTokenizer(r)
	seen := make(map[string]bool)

	var out []string

	for len(out) < limit {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}

			title, ok := TitleFromHref(hrefAttr(z))
			if !ok || seen[title] {
				continue
			}

			seen[title] = true
			out = append(out, title)
		}
	}

	return out
}

func hrefAttr(z *html.Tokenizer) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val)
		}

		if !more {
			return ""
		}
	}
}

// TitleFromHref converts a relative article href ("./Foo_bar" or
// "/wiki/Foo_bar") into a title. It rejects anchors, external links,
// namespaced pages, wiki actions, list pages and titles under two runes.
func TitleFromHref(href string) (string, bool) {
	var part string

	switch {
	case strings.HasPrefix(href, "./"):
		part = href[len("./"):]
	case strings.HasPrefix(href, "/wiki/"):
		part = href[len("/wiki/"):]
	default:
		return "", false
	}

	if strings.Contains(strings.ToLower(href), "action=") {
		return "", false
	}

	if i := strings.IndexAny(part, "?#"); i >= 0 {
		part = part[:i]
	}

	title, err := url.PathUnescape(part)
	if err != nil {
		return "", false
	}

	title = strings.ReplaceAll(title, "_", " ")

	// Namespaced pages: File:, Category:, Template:, Help:, Special:, Talk:...
	if strings.Contains(title, ":") {
		return "", false
	}

	if utf8.RuneCountInString(title) < 2 || strings.HasPrefix(title, "List of") {
		return "", false
	}

	return title, true
}

// plainText strips markup from an HTML fragment such as a search snippet.
func plainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// pagePath encodes a title for use as a single URL path segment.
func pagePath(title string) string {
	return url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
