package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors match page chrome that never carries posting content.
var noiseSelectors = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"header",
	"footer",
	"aside",
	"iframe",
	"form",
}

// contentSelectors are tried in order before falling back to the full body.
var contentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	".job-description",
	".description",
	"#content",
}

// FromHTML extracts the readable text of a job posting page and returns it
// cleaned. It returns an error when the markup cannot be parsed at all.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var root *goquery.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			root = s.First()
			break
		}
	}
	if root == nil {
		root = doc.Find("body")
	}

	var b strings.Builder
	root.Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers; only leaf-ish nodes contribute lines so text
		// is not duplicated through every ancestor div.
		if s.Children().Filter("p, div, ul, ol, li, h1, h2, h3, h4").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			b.WriteString("- ")
		}
		b.WriteString(text)
		b.WriteString("\n")
	})

	text := b.String()
	if strings.TrimSpace(text) == "" {
		text = root.Text()
	}
	return CleanText(text), nil
}
