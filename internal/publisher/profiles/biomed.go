package profiles

import "CiteScanner/internal/publisher"

func BioMed() publisher.Profile {
	return publisher.Rule{
		Publisher: "biomed",
		Match:     publisher.MetaMatch("citation_publisher", "BioMed Central Ltd"),
		Head:      metaHeadCI,
		Cited:     publisher.SelectorRefs("ol#references > li"),
	}
}
