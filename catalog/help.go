package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText flattens a help fragment to text. Line breaks and block ends become newlines.
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	doc.Find("br").ReplaceWithHtml("\n")

	var lines []string
	doc.Find("h1, h2, h3, p").Each(func(i int, s *goquery.Selection) {
		for _, line := range strings.Split(s.Text(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}

// Help returns the plain-text help for a descriptor
func (d Descriptor) Help() string {
	return PlainText(d.HelpHeader + d.HelpBody)
}
