package profiles

import "CiteScanner/internal/publisher"

func Nature() publisher.Profile {
	return publisher.Rule{
		Publisher: "nature",
		Match:     publisher.MetaMatch("DC.publisher", "Nature Publishing Group"),
		Head:      metaHead,
		Cited:     publisher.SelectorRefs("ol.references > li"),
	}
}
