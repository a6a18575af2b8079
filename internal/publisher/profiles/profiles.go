// Package profiles carries the built-in publisher rule set: one detection
// predicate plus paired head/cited extractors per publisher, ported from
// the rules the upstream collector recognizes.
package profiles

import (
	"regexp"

	"CiteScanner/internal/publisher"
)

// Head metadata lives in DC.* and citation_* meta tags; citation_reference
// tags belong to the bibliography, not the head, and are skipped. Some
// publishers emit the prefixes in mixed case.
var (
	headMeta   = regexp.MustCompile(`DC\.|citation_`)
	headOmit   = regexp.MustCompile(`citation_reference`)
	headMetaCI = regexp.MustCompile(`(?i)DC\.|citation_`)
	headOmitCI = regexp.MustCompile(`(?i)citation_reference`)
)

var metaHead = publisher.MetaScan(headMeta, headMeta, headOmit)
var metaHeadCI = publisher.MetaScan(headMetaCI, headMetaCI, headOmitCI)

// RegisterAll registers every built-in publisher profile. The call order
// here is the classification precedence contract; new publishers go at
// the end unless they must shadow an existing rule.
func RegisterAll(reg *publisher.Registry) error {
	all := []publisher.Profile{
		ScienceDirect(),
		Springer(),
		Highwire(),
		Wiley(),
		BioMed(),
		PubMed(),
		MIT(),
		PLOS(),
		Frontiers(),
		Nature(),
		JAMA(),
		APA(),
	}
	for _, p := range all {
		if err := reg.Register(p); err != nil {
			return err
		}
	}
	return nil
}
