package profiles

import "CiteScanner/internal/publisher"

func JAMA() publisher.Profile {
	return publisher.Rule{
		Publisher: "jama",
		Match:     publisher.MetaMatch("citation_publisher", "American Medical Association"),
		Head:      metaHead,
		Cited:     publisher.SelectorRefs("div.referenceSection div.refRow"),
	}
}
