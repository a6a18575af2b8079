package domain

// HeadReference maps a bibliographic field name to its values in document
// order. Fields such as "author" legitimately repeat.
type HeadReference map[string][]string

// Add appends a value to the named field, preserving encounter order.
func (h HeadReference) Add(field, value string) {
	h[field] = append(h[field], value)
}

// Empty reports whether no field carries any value.
func (h HeadReference) Empty() bool {
	return len(h) == 0
}

// CitedReferenceList holds the bibliography entries of a document as raw
// HTML fragments, exactly as extracted and in document order.
type CitedReferenceList []string

// ScrapedRecord is the result of classifying and extracting one document.
// An empty Publisher signals a classification miss.
type ScrapedRecord struct {
	Publisher string             `json:"publisher"`
	URL       string             `json:"url"`
	HeadRef   HeadReference      `json:"head_ref"`
	CitedRefs CitedReferenceList `json:"cited_refs"`
}

// Valid reports whether the record may be submitted. Publisher, head
// metadata and cited references are checked independently; any one of
// them missing invalidates the record.
func (r ScrapedRecord) Valid() bool {
	return r.Publisher != "" && !r.HeadRef.Empty() && len(r.CitedRefs) > 0
}

// SubmissionMeta travels alongside a record when it is submitted.
type SubmissionMeta struct {
	Source    string `json:"source"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusSuccess is the collector status signalling an accepted submission.
const StatusSuccess = "success"

// SubmissionResult is the decoded collector response. A non-success
// Status means the submission was rejected, not that transport failed.
type SubmissionResult struct {
	Status  string `json:"status"`
	Message string `json:"msg"`
}

// Accepted reports whether the collector accepted the submission.
func (r SubmissionResult) Accepted() bool {
	return r.Status == StatusSuccess
}

// Outcome names the terminal state of one workflow invocation.
type Outcome string

const (
	// OutcomeStored is the single success outcome: the record was sent
	// and written to the dedup store.
	OutcomeStored Outcome = "stored"
	// OutcomeInvalid marks a record that failed the validity check.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeDuplicate marks a url already present in the dedup store.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeDeclined marks a submission the user did not confirm.
	OutcomeDeclined Outcome = "declined"
	// OutcomeRejected marks a submission the collector did not accept.
	OutcomeRejected Outcome = "rejected"
)
