package wikipedia

import (
	"slices"
	"strings"
	"testing"
)

func TestTitleFromHref(t *testing.T) {
	tests := []struct {
		href      string
		wantTitle string
		wantOK    bool
	}{
		{href: "./Albert_Einstein", wantTitle: "Albert Einstein", wantOK: true},
		{href: "/wiki/General_relativity", wantTitle: "General relativity", wantOK: true},
		{href: "./Theory_of_relativity#Special", wantTitle: "Theory of relativity", wantOK: true},
		{href: "./Caf%C3%A9", wantTitle: "Café", wantOK: true},
		{href: "./AC/DC", wantTitle: "AC/DC", wantOK: true},
		{href: "./Credit_card", wantTitle: "Credit card", wantOK: true},
		{href: "#cite_note-1"},
		{href: "https://example.com/wiki/Foo"},
		{href: "./File:Einstein.jpg"},
		{href: "./Category:Physicists"},
		{href: "/wiki/Template:Infobox"},
		{href: "./Special:Random"},
		{href: "./Talk:Physics"},
		{href: "./Foo?action=edit&redlink=1"},
		{href: "./List_of_physicists"},
		{href: "./X"},
		{href: "./"},
		{href: "Physics"},
		{href: "./%zz"},
	}

	for _, tc := range tests {
		t.Run(tc.href, func(t *testing.T) {
			title, ok := TitleFromHref(tc.href)
			if ok != tc.wantOK || title != tc.wantTitle {
				t.Errorf("TitleFromHref(%q) = %q, %v; want %q, %v", tc.href, title, ok, tc.wantTitle, tc.wantOK)
			}
		})
	}
}

func TestExtractLinks(t *testing.T) {
	page := `<html><body>
<p>See <a rel="mw:WikiLink" href="./Physics">physics</a> and
<a rel="mw:WikiLink" href="./Mathematics" title="Mathematics">maths</a>.</p>
<a href="#cite_note-1">[1]</a>
<a rel="mw:ExtLink" href="https://example.com">ext</a>
<a rel="mw:WikiLink" href="./Physics#History">again</a>
<link rel="mw:PageProp/Category" href="./Category:Science"/>
<a>no href</a>
<a href="/wiki/Chemistry">chem</a>
<a rel="mw:WikiLink" href="./Biology">bio</a>
</body></html>`

	got := ExtractLinks(strings.NewReader(page), 50)
	want := []string{"Physics", "Mathematics", "Chemistry", "Biology"}
	if !slices.Equal(got, want) {
		t.Errorf("links = %v, want %v", got, want)
	}

	if got := ExtractLinks(strings.NewReader(page), 2); !slices.Equal(got, want[:2]) {
		t.Errorf("limited links = %v, want %v", got, want[:2])
	}

	if got := ExtractLinks(strings.NewReader("not html at all"), 10); len(got) != 0 {
		t.Errorf("expected no links, got %v", got)
	}
}

func TestPlainText(t *testing.T) {
	got := plainText(`The <span class="searchmatch">theory</span> of relativity`)
	if got != "The theory of relativity" {
		t.Errorf("plainText = %q", got)
	}
}
