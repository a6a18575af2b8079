package profiles

import "CiteScanner/internal/publisher"

func MIT() publisher.Profile {
	return publisher.Rule{
		Publisher: "mit",
		Match:     publisher.MetaPrefixMatch("dc.Publisher", "MIT Press"),
		Head:      metaHeadCI,
		Cited:     publisher.SelectorRefs("td.refnumber + td"),
	}
}
