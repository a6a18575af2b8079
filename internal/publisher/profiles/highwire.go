package profiles

import "CiteScanner/internal/publisher"

// Highwire-hosted journals are recognized by their HW.identifier meta tag.
func Highwire() publisher.Profile {
	return publisher.Rule{
		Publisher: "highwire",
		Match:     publisher.MetaPresent("HW.identifier"),
		Head:      metaHead,
		Cited:     publisher.SelectorRefs("ol.cit-list > li"),
	}
}
