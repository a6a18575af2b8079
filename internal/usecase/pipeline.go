package usecase

import (
	"log/slog"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/publisher"
)

// Pipeline classifies one document against the publisher registry and
// runs the matched publisher's extractors.
type Pipeline struct {
	registry *publisher.Registry
	logger   *slog.Logger
}

// NewPipeline wires the publisher registry.
func NewPipeline(reg *publisher.Registry, log *slog.Logger) *Pipeline {
	return &Pipeline{registry: reg, logger: log}
}

// Run produces the ScrapedRecord for doc. A classification miss yields a
// record with an empty publisher and empty extraction fields; that is a
// legitimate terminal outcome, not an error. Whether the record is fit
// for submission is the caller's check (ScrapedRecord.Valid).
func (p *Pipeline) Run(doc *docquery.Document) domain.ScrapedRecord {
	record := domain.ScrapedRecord{
		URL:       doc.URL(),
		HeadRef:   domain.HeadReference{},
		CitedRefs: domain.CitedReferenceList{},
	}

	name, ok := p.registry.Classify(doc)
	if !ok {
		p.debug("no publisher matched", "url", record.URL)
		return record
	}
	record.Publisher = name

	if head, ok := p.registry.ExtractHead(name, doc); ok {
		record.HeadRef = head
	}
	if cited, ok := p.registry.ExtractCited(name, doc); ok {
		record.CitedRefs = cited
	}

	p.debug("document scraped",
		"url", record.URL,
		"publisher", name,
		"head_fields", len(record.HeadRef),
		"cited_refs", len(record.CitedRefs))
	return record
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
