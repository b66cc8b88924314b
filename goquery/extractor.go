// Package goquery provides an implementation of brief.Extractor that picks
// the main text of a page with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brief"
)

// BoilerplateSelector matches elements removed before text is read.
const BoilerplateSelector = "script, style, nav, header, footer, aside, iframe, .ad, .advertisement"

// ContentSelectors are tried in order; the first one matching any element
// supplies the content. The body is used when none match.
var ContentSelectors = []SelectorConfig{
	{Selector: "article", All: true},
	{Selector: "main", All: true},
	{Selector: ".post-content, .article-content, .entry-content, .content"},
}

// SelectorConfig describes where a page keeps its main content.
type SelectorConfig struct {
	Selector string

	// All reads the text of every match instead of only the first.
	All bool
}

// Ensure Extractor implements brief.Extractor at compile time.
var _ brief.Extractor = (*Extractor)(nil)

// Extractor extracts page text using CSS selectors.
type Extractor struct {
	selectors []SelectorConfig
}

// NewExtractor creates an Extractor. With no selectors it uses
// ContentSelectors.
func NewExtractor(selectors ...SelectorConfig) *Extractor {
	if len(selectors) == 0 {
		selectors = ContentSelectors
	}
	return &Extractor{selectors: selectors}
}

// Extract removes boilerplate and returns the text of the first matching
// content selector, with whitespace collapsed. The title comes from the
// <title> element, else the first <h1>.
func (e *Extractor) Extract(html string) (*brief.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, brief.Errorf(brief.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(BoilerplateSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	return &brief.ExtractResult{
		Title: title,
		Text:  brief.CollapseWhitespace(e.content(doc)),
	}, nil
}

func (e *Extractor) content(doc *goquery.Document) string {
	for _, config := range e.selectors {
		sel := doc.Find(config.Selector)
		if sel.Length() == 0 {
			continue
		}
		if !config.All {
			sel = sel.First()
		}
		return sel.Text()
	}
	return doc.Find("body").Text()
}
