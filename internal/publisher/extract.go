package publisher

import (
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
)

// MetaScan builds a head extractor that scans <meta name=...> nodes,
// keeps those whose name matches match (skipping names matched by omit,
// which may be nil), strips the strip pattern from the name to form the
// field key, and collects content values in encounter order.
//
// This single strategy covers most publishers; the rest ship bespoke
// extractors in the profiles package.
func MetaScan(match, strip, omit *regexp.Regexp) func(doc *docquery.Document) domain.HeadReference {
	return func(doc *docquery.Document) domain.HeadReference {
		head := domain.HeadReference{}
		doc.Select("meta[name]").Each(func(_ int, s *goquery.Selection) {
			name, _ := s.Attr("name")
			if !match.MatchString(name) {
				return
			}
			if omit != nil && omit.MatchString(name) {
				return
			}
			content, _ := s.Attr("content")
			head.Add(strip.ReplaceAllString(name, ""), content)
		})
		return head
	}
}

// SelectorRefs builds a cited-reference extractor that returns the outer
// HTML of every node matching selector, in document order.
func SelectorRefs(selector string) func(doc *docquery.Document) domain.CitedReferenceList {
	return func(doc *docquery.Document) domain.CitedReferenceList {
		var refs domain.CitedReferenceList
		doc.Select(selector).Each(func(_ int, s *goquery.Selection) {
			if html, err := goquery.OuterHtml(s); err == nil {
				refs = append(refs, html)
			}
		})
		return refs
	}
}

// TitleMatch builds a predicate that tests the page <title> against expr.
func TitleMatch(expr *regexp.Regexp) func(doc *docquery.Document) bool {
	return func(doc *docquery.Document) bool {
		title, err := doc.Select("title").Html()
		if err != nil {
			return false
		}
		return expr.MatchString(title)
	}
}

// MetaMatch builds a predicate that matches documents carrying a
// <meta name=... content=...> node with the given exact attribute values.
func MetaMatch(name, content string) func(doc *docquery.Document) bool {
	selector := fmt.Sprintf(`meta[name=%q][content=%q]`, name, content)
	return func(doc *docquery.Document) bool {
		return doc.Select(selector).Length() > 0
	}
}

// MetaPrefixMatch is MetaMatch with a prefix test on the content value.
func MetaPrefixMatch(name, contentPrefix string) func(doc *docquery.Document) bool {
	selector := fmt.Sprintf(`meta[name=%q][content^=%q]`, name, contentPrefix)
	return func(doc *docquery.Document) bool {
		return doc.Select(selector).Length() > 0
	}
}

// MetaPresent builds a predicate that matches documents carrying any
// <meta> node with the given name attribute.
func MetaPresent(name string) func(doc *docquery.Document) bool {
	selector := fmt.Sprintf(`meta[name=%q]`, name)
	return func(doc *docquery.Document) bool {
		return doc.Select(selector).Length() > 0
	}
}
