package profiles

import (
	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/publisher"
)

var (
	pubmedRefsV1 = publisher.SelectorRefs(`li[id^="B"]`)
	pubmedRefsV2 = publisher.SelectorRefs("div.ref-cit-blk")
)

// PubMed Central serves two reference-list layouts; the older one keys
// list items by B-prefixed ids, the newer one wraps each entry in a
// ref-cit-blk div.
func PubMed() publisher.Profile {
	return publisher.Rule{
		Publisher: "pubmed",
		Match:     publisher.MetaMatch("ncbi_db", "pmc"),
		Head:      metaHeadCI,
		Cited: func(doc *docquery.Document) domain.CitedReferenceList {
			if refs := pubmedRefsV1(doc); len(refs) > 0 {
				return refs
			}
			return pubmedRefsV2(doc)
		},
	}
}
