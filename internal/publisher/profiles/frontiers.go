package profiles

import "CiteScanner/internal/publisher"

func Frontiers() publisher.Profile {
	return publisher.Rule{
		Publisher: "frontiers",
		Match:     publisher.MetaMatch("citation_publisher", "Frontiers"),
		Head:      metaHead,
		Cited:     publisher.SelectorRefs("div.References"),
	}
}
