package publisher

import (
	"fmt"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
)

// Profile bundles the detection predicate and the paired extractors for
// one publisher. Implementations must be stateless: every method is a
// pure function over the document it is given.
type Profile interface {
	Name() string
	Matches(doc *docquery.Document) bool
	ExtractHead(doc *docquery.Document) domain.HeadReference
	ExtractCited(doc *docquery.Document) domain.CitedReferenceList
}

// Registry holds publisher profiles in registration order. Registration
// order is the classification contract: profiles need not be mutually
// exclusive, and Classify returns the first match.
type Registry struct {
	profiles []Profile
	byName   map[string]Profile
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Profile{}}
}

// Register appends a profile. Names are unique across the registry.
func (r *Registry) Register(p Profile) error {
	if p == nil || p.Name() == "" {
		return fmt.Errorf("profile must carry a name")
	}
	if _, exists := r.byName[p.Name()]; exists {
		return fmt.Errorf("publisher %s is already registered", p.Name())
	}
	r.profiles = append(r.profiles, p)
	r.byName[p.Name()] = p
	return nil
}

// Classify returns the name of the first profile whose predicate matches
// doc, trying profiles in registration order. A predicate that panics
// against a malformed page counts as a non-match.
func (r *Registry) Classify(doc *docquery.Document) (string, bool) {
	for _, p := range r.profiles {
		if safeMatch(p, doc) {
			return p.Name(), true
		}
	}
	return "", false
}

// ExtractHead runs the head extractor registered under name. The second
// return is false when no such publisher is registered.
func (r *Registry) ExtractHead(name string, doc *docquery.Document) (domain.HeadReference, bool) {
	p, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return p.ExtractHead(doc), true
}

// ExtractCited runs the cited-reference extractor registered under name.
// The second return is false when no such publisher is registered.
func (r *Registry) ExtractCited(name string, doc *docquery.Document) (domain.CitedReferenceList, bool) {
	p, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return p.ExtractCited(doc), true
}

func safeMatch(p Profile, doc *docquery.Document) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return p.Matches(doc)
}

// Rule is the plain-function Profile used by the built-in publisher set:
// a name plus three closures over the document query surface.
type Rule struct {
	Publisher string
	Match     func(doc *docquery.Document) bool
	Head      func(doc *docquery.Document) domain.HeadReference
	Cited     func(doc *docquery.Document) domain.CitedReferenceList
}

var _ Profile = Rule{}

// Name identifies the publisher inside the registry.
func (r Rule) Name() string { return r.Publisher }

// Matches evaluates the detection predicate.
func (r Rule) Matches(doc *docquery.Document) bool {
	if r.Match == nil {
		return false
	}
	return r.Match(doc)
}

// ExtractHead runs the head-metadata extractor.
func (r Rule) ExtractHead(doc *docquery.Document) domain.HeadReference {
	if r.Head == nil {
		return domain.HeadReference{}
	}
	return r.Head(doc)
}

// ExtractCited runs the cited-reference extractor.
func (r Rule) ExtractCited(doc *docquery.Document) domain.CitedReferenceList {
	if r.Cited == nil {
		return nil
	}
	return r.Cited(doc)
}
