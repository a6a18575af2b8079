package profiles

import "CiteScanner/internal/publisher"

func PLOS() publisher.Profile {
	return publisher.Rule{
		Publisher: "plos",
		Match:     publisher.MetaMatch("citation_publisher", "Public Library of Science"),
		Head:      metaHead,
		Cited:     publisher.SelectorRefs("ol.references > li"),
	}
}
