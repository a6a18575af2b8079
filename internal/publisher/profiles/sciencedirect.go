package profiles

import (
	"regexp"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/publisher"
)

var (
	sciencedirectTitle = regexp.MustCompile(`(?i)sciencedirect`)
	doiLinkPrefix      = regexp.MustCompile(`.*?dx\.doi\.org.*?/`)
)

// ScienceDirect pages carry no usable citation_* meta tags; the DOI is
// pulled from the article's DOI anchor instead.
func ScienceDirect() publisher.Profile {
	return publisher.Rule{
		Publisher: "sciencedirect",
		Match:     publisher.TitleMatch(sciencedirectTitle),
		Head: func(doc *docquery.Document) domain.HeadReference {
			head := domain.HeadReference{}
			href, ok := doc.Select("a#ddDoi").Attr("href")
			if !ok {
				return head
			}
			head.Add("doi", doiLinkPrefix.ReplaceAllString(href, ""))
			return head
		},
		Cited: publisher.SelectorRefs("ul.reference"),
	}
}
