package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/publisher"
)

type memDedup struct {
	records map[string]domain.ScrapedRecord
	sets    int
}

func newMemDedup() *memDedup {
	return &memDedup{records: map[string]domain.ScrapedRecord{}}
}

func (s *memDedup) Get(_ context.Context, url string) (domain.ScrapedRecord, bool, error) {
	rec, ok := s.records[url]
	return rec, ok, nil
}

func (s *memDedup) Set(_ context.Context, url string, record domain.ScrapedRecord) error {
	s.records[url] = record
	s.sets++
	return nil
}

type memSettings struct {
	values map[string]string
}

func newMemSettings(mode string) *memSettings {
	values := map[string]string{}
	if mode != "" {
		values[ModeKey] = mode
	}
	return &memSettings{values: values}
}

func (s *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

type fakeConfirmer struct {
	decision bool
	calls    int
}

func (c *fakeConfirmer) Request(_ context.Context, _ domain.ScrapedRecord) (bool, error) {
	c.calls++
	return c.decision, nil
}

type fakeTransport struct {
	result     domain.SubmissionResult
	err        error
	calls      int
	lastRecord domain.ScrapedRecord
	lastMeta   domain.SubmissionMeta
}

func (t *fakeTransport) Submit(_ context.Context, record domain.ScrapedRecord, meta domain.SubmissionMeta) (domain.SubmissionResult, error) {
	t.calls++
	t.lastRecord = record
	t.lastMeta = meta
	if t.err != nil {
		return domain.SubmissionResult{}, t.err
	}
	return t.result, nil
}

const sampleURL = "http://journal.example.org/article/42"

var headMetaExpr = regexp.MustCompile(`citation_`)

const sampleHTML = `
<html><head>
  <title>A Sample Article</title>
  <meta name="sample_id" content="42">
  <meta name="citation_title" content="A Sample Article">
  <meta name="citation_author" content="Doe, J.">
</head><body>
  <ol class="refs"><li>Ref one</li><li>Ref two</li></ol>
</body></html>`

func sampleRegistry(t *testing.T) *publisher.Registry {
	t.Helper()
	reg := publisher.NewRegistry()
	err := reg.Register(publisher.Rule{
		Publisher: "sample",
		Match:     publisher.MetaPresent("sample_id"),
		Head:      publisher.MetaScan(headMetaExpr, headMetaExpr, nil),
		Cited:     publisher.SelectorRefs("ol.refs > li"),
	})
	require.NoError(t, err)
	return reg
}

func sampleDoc(t *testing.T) *docquery.Document {
	t.Helper()
	doc, err := docquery.FromReader(strings.NewReader(sampleHTML), sampleURL)
	require.NoError(t, err)
	return doc
}

func unknownDoc(t *testing.T) *docquery.Document {
	t.Helper()
	html := `<html><head><title>Plain page</title></head><body><p>hello</p></body></html>`
	doc, err := docquery.FromReader(strings.NewReader(html), "http://example.org/plain")
	require.NoError(t, err)
	return doc
}

type workflowFixture struct {
	workflow  *Workflow
	dedup     *memDedup
	settings  *memSettings
	confirmer *fakeConfirmer
	transport *fakeTransport
}

func newWorkflowFixture(t *testing.T, mode string) *workflowFixture {
	t.Helper()
	f := &workflowFixture{
		dedup:     newMemDedup(),
		settings:  newMemSettings(mode),
		confirmer: &fakeConfirmer{decision: true},
		transport: &fakeTransport{result: domain.SubmissionResult{Status: domain.StatusSuccess, Message: "ok"}},
	}
	f.workflow = NewWorkflow(WorkflowDeps{
		Pipeline:  NewPipeline(sampleRegistry(t), nil),
		Dedup:     f.dedup,
		Settings:  f.settings,
		Confirmer: f.confirmer,
		Transport: f.transport,
		Source:    "test-suite",
	})
	return f
}

func TestWorkflowStoresValidRecord(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeNoConfirm)
	outcome, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStored, outcome)

	require.Equal(t, 1, f.transport.calls)
	assert.Equal(t, "test-suite", f.transport.lastMeta.Source)
	assert.Equal(t, "sample", f.transport.lastRecord.Publisher)

	stored, found := f.dedup.records[sampleURL]
	require.True(t, found, "dedup store should hold the submitted url")
	assert.Equal(t, f.transport.lastRecord, stored)
}

func TestWorkflowDefaultsToConfirmAndPersistsMode(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, "")
	outcome, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStored, outcome)

	mode, found, err := f.settings.Get(context.Background(), ModeKey)
	require.NoError(t, err)
	require.True(t, found, "default mode should be written back")
	assert.Equal(t, ModeConfirm, mode)
	assert.Equal(t, 1, f.confirmer.calls)
}

func TestWorkflowUnknownModeFails(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, "sometimes")
	_, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.Error(t, err)
	assert.Zero(t, f.transport.calls)
}

func TestWorkflowInvalidRecordNeverReachesConfirmOrSend(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeConfirm)
	outcome, err := f.workflow.Run(context.Background(), unknownDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInvalid, outcome)

	assert.Zero(t, f.confirmer.calls)
	assert.Zero(t, f.transport.calls)
	assert.Zero(t, f.dedup.sets)
}

func TestWorkflowIdempotence(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeNoConfirm)
	ctx := context.Background()

	first, err := f.workflow.Run(ctx, sampleDoc(t))
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeStored, first)

	second, err := f.workflow.Run(ctx, sampleDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, second)

	assert.Equal(t, 1, f.transport.calls, "transport must be invoked exactly once")
	assert.Equal(t, 1, f.dedup.sets, "dedup store must be written exactly once")
}

func TestWorkflowConfirmationBypass(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeNoConfirm)
	outcome, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStored, outcome)
	assert.Zero(t, f.confirmer.calls, "confirmer must not be consulted in noconfirm mode")
}

func TestWorkflowDeclinedConfirmation(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeConfirm)
	f.confirmer.decision = false

	outcome, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDeclined, outcome)
	assert.Zero(t, f.transport.calls)
	assert.Zero(t, f.dedup.sets)
}

func TestWorkflowRejectedSubmission(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeNoConfirm)
	f.transport.result = domain.SubmissionResult{Status: "failure", Message: "unsupported publisher"}

	outcome, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.NoError(t, err, "a rejected submission is not a workflow failure")
	assert.Equal(t, domain.OutcomeRejected, outcome)
	assert.Zero(t, f.dedup.sets)
}

func TestWorkflowTransportFailurePropagates(t *testing.T) {
	t.Parallel()

	f := newWorkflowFixture(t, ModeNoConfirm)
	f.transport.err = errors.New("connection refused")

	_, err := f.workflow.Run(context.Background(), sampleDoc(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Zero(t, f.dedup.sets, "no partial state may be persisted on failure")
}
