package docquery

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Document is one parsed article page together with the URL it was loaded
// from. It is the only view of a page the classification and extraction
// code gets to see.
type Document struct {
	doc *goquery.Document
	url string
}

// FromReader parses an HTML page from r. The url is recorded as the
// document's current location.
func FromReader(r io.Reader, url string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{doc: doc, url: url}, nil
}

// Select returns all nodes matching a CSS selector, in document order.
func (d *Document) Select(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// URL returns the location the document was loaded from.
func (d *Document) URL() string {
	return d.url
}
