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
	springerTitle    = regexp.MustCompile(`(?i)springer`)
	springerKeyStrip = regexp.MustCompile(`(?i)article`)
)

// Springer keeps head metadata in a context-information div whose span
// class names encode the field ("ArticleTitle", "ArticleDOI", ...).
func Springer() publisher.Profile {
	return publisher.Rule{
		Publisher: "springer",
		Match:     publisher.TitleMatch(springerTitle),
		Head: func(doc *docquery.Document) domain.HeadReference {
			head := domain.HeadReference{}
			doc.Select("div.ContextInformation").ChildrenFiltered("span").Each(func(_ int, s *goquery.Selection) {
				class, _ := s.Attr("class")
				key := springerKeyStrip.ReplaceAllString(class, "")
				head.Add(key, strings.TrimSpace(s.Text()))
			})
			doc.Select("span.AuthorName").Each(func(_ int, s *goquery.Selection) {
				head.Add("authors", strings.TrimSpace(s.Text()))
			})
			return head
		},
		Cited: publisher.SelectorRefs("div.Citation"),
	}
}
