package profiles

import "CiteScanner/internal/publisher"

func Wiley() publisher.Profile {
	return publisher.Rule{
		Publisher: "wiley",
		Match: publisher.MetaMatch("citation_publisher",
			"Wiley Subscription Services, Inc., A Wiley Company"),
		Head:  metaHead,
		Cited: publisher.SelectorRefs("ul.plain > li"),
	}
}
