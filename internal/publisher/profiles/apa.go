package profiles

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/publisher"
)

var (
	apaPublisher = regexp.MustCompile(`(?i)american psychological association`)
	apaKeyColons = regexp.MustCompile(`^:|:$`)
	// Boilerplate paragraphs interleaved with the APA reference list.
	apaCopyright = regexp.MustCompile(`(?i)this publication is protected`)
	apaHistory   = regexp.MustCompile(`(?i)submitted.*?revised.*?accepted`)
)

// APA (PsycNET) pages carry no citation meta tags at all; detection and
// both extractors walk the definition-list layout of the article page.
func APA() publisher.Profile {
	return publisher.Rule{
		Publisher: "apa",
		Match: func(doc *docquery.Document) bool {
			matched := false
			doc.Select("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
				if strings.TrimSpace(dt.Text()) != "Publisher:" {
					return true
				}
				if apaPublisher.MatchString(dt.NextFiltered("dd").Text()) {
					matched = true
					return false
				}
				return true
			})
			return matched
		},
		Head: func(doc *docquery.Document) domain.HeadReference {
			head := domain.HeadReference{}
			dts := doc.Select(".citation-wrapping-div dt")
			dds := doc.Select(".citation-wrapping-div dd")
			n := dts.Length()
			if dds.Length() < n {
				n = dds.Length()
			}
			for i := 0; i < n; i++ {
				key, err := dts.Eq(i).Html()
				if err != nil {
					continue
				}
				val, err := dds.Eq(i).Html()
				if err != nil {
					continue
				}
				head.Add(apaKeyColons.ReplaceAllString(key, ""), val)
			}
			return head
		},
		Cited: func(doc *docquery.Document) domain.CitedReferenceList {
			link := doc.Select(`a[title="References"][href="#toc"]`)
			if link.Length() == 0 {
				return nil
			}
			span := link.ParentFiltered("span")
			if span.Length() == 0 {
				return nil
			}
			var refs domain.CitedReferenceList
			span.NextAllFiltered("p.body-paragraph").Each(func(_ int, s *goquery.Selection) {
				html, err := goquery.OuterHtml(s)
				if err != nil {
					return
				}
				if apaCopyright.MatchString(html) || apaHistory.MatchString(html) {
					return
				}
				refs = append(refs, html)
			})
			return refs
		},
	}
}
