package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/ports"
)

// Settings key and values for the confirmation mode flag.
const (
	ModeKey       = "mode"
	ModeConfirm   = "confirm"
	ModeNoConfirm = "noconfirm"
)

// WorkflowState accumulates across the stages of one invocation. It is
// owned by that invocation alone and discarded at the end; only the dedup
// entry it produces outlives the run.
type WorkflowState struct {
	Doc       *docquery.Document
	DoConfirm bool
	Record    domain.ScrapedRecord
	Confirmed bool
	Result    domain.SubmissionResult
	Outcome   domain.Outcome
}

// transition is the tagged result of one workflow stage. Errors travel
// separately: a stage returns (abort, nil) for silent non-outcomes and
// (0, err) for failures that must reach the caller.
type transition int

const (
	proceed transition = iota
	abort
)

// WorkflowDeps wires the collaborators of the submission workflow.
type WorkflowDeps struct {
	Pipeline  *Pipeline
	Dedup     ports.DedupStore
	Settings  ports.SettingsStore
	Confirmer ports.Confirmer
	Transport ports.Transport
	Source    string
	Logger    *slog.Logger
}

// Workflow drives one document through scrape, validate, dedup, confirm,
// send and store. Stages run strictly in sequence; each either proceeds,
// aborts the run silently, or fails it.
type Workflow struct {
	pipeline  *Pipeline
	dedup     ports.DedupStore
	settings  ports.SettingsStore
	confirmer ports.Confirmer
	transport ports.Transport
	source    string
	logger    *slog.Logger
}

// NewWorkflow constructs the orchestrating component.
func NewWorkflow(deps WorkflowDeps) *Workflow {
	return &Workflow{
		pipeline:  deps.Pipeline,
		dedup:     deps.Dedup,
		settings:  deps.Settings,
		confirmer: deps.Confirmer,
		transport: deps.Transport,
		source:    deps.Source,
		logger:    deps.Logger,
	}
}

// Run executes the workflow for one document and reports the terminal
// outcome. Aborted runs (invalid record, duplicate, declined, rejected)
// return their outcome with a nil error; transport and collaborator
// failures return an error and no outcome.
func (w *Workflow) Run(ctx context.Context, doc *docquery.Document) (domain.Outcome, error) {
	state := &WorkflowState{Doc: doc}

	stages := []struct {
		name string
		fn   func(ctx context.Context, state *WorkflowState) (transition, error)
	}{
		{"init", w.init},
		{"scrape", w.scrape},
		{"validate", w.validate},
		{"dedup", w.checkDedup},
		{"confirm", w.confirm},
		{"send", w.send},
		{"store", w.store},
	}

	for _, stage := range stages {
		next, err := stage.fn(ctx, state)
		if err != nil {
			return "", fmt.Errorf("%s: %w", stage.name, err)
		}
		if next == abort {
			w.debug("workflow aborted", "stage", stage.name, "outcome", state.Outcome, "url", doc.URL())
			return state.Outcome, nil
		}
	}

	state.Outcome = domain.OutcomeStored
	w.debug("workflow stored", "url", state.Record.URL, "publisher", state.Record.Publisher)
	return state.Outcome, nil
}

// init reads the confirmation mode flag. An absent flag defaults to
// confirm and is persisted back so later runs see an explicit value.
func (w *Workflow) init(ctx context.Context, state *WorkflowState) (transition, error) {
	mode, found, err := w.settings.Get(ctx, ModeKey)
	if err != nil {
		return 0, fmt.Errorf("read mode: %w", err)
	}
	if !found {
		mode = ModeConfirm
		if err := w.settings.Set(ctx, ModeKey, mode); err != nil {
			return 0, fmt.Errorf("persist default mode: %w", err)
		}
	}

	switch mode {
	case ModeConfirm:
		state.DoConfirm = true
	case ModeNoConfirm:
		state.DoConfirm = false
	default:
		return 0, fmt.Errorf("unknown mode %q", mode)
	}
	return proceed, nil
}

func (w *Workflow) scrape(ctx context.Context, state *WorkflowState) (transition, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	state.Record = w.pipeline.Run(state.Doc)
	return proceed, nil
}

func (w *Workflow) validate(_ context.Context, state *WorkflowState) (transition, error) {
	if !state.Record.Valid() {
		state.Outcome = domain.OutcomeInvalid
		return abort, nil
	}
	return proceed, nil
}

func (w *Workflow) checkDedup(ctx context.Context, state *WorkflowState) (transition, error) {
	_, found, err := w.dedup.Get(ctx, state.Record.URL)
	if err != nil {
		return 0, fmt.Errorf("dedup lookup: %w", err)
	}
	if found {
		// Re-submission of an already-sent url is a normal no-op.
		state.Outcome = domain.OutcomeDuplicate
		return abort, nil
	}
	return proceed, nil
}

func (w *Workflow) confirm(ctx context.Context, state *WorkflowState) (transition, error) {
	if !state.DoConfirm {
		state.Confirmed = true
		return proceed, nil
	}

	confirmed, err := w.confirmer.Request(ctx, state.Record)
	if err != nil {
		return 0, fmt.Errorf("request confirmation: %w", err)
	}
	state.Confirmed = confirmed
	if !confirmed {
		state.Outcome = domain.OutcomeDeclined
		return abort, nil
	}
	return proceed, nil
}

// send is the one stage whose failure is user-visible: transport errors
// propagate to the caller instead of aborting silently.
func (w *Workflow) send(ctx context.Context, state *WorkflowState) (transition, error) {
	result, err := w.transport.Submit(ctx, state.Record, domain.SubmissionMeta{Source: w.source})
	if err != nil {
		return 0, err
	}
	state.Result = result
	if !result.Accepted() {
		w.debug("submission rejected", "status", result.Status, "msg", result.Message)
		state.Outcome = domain.OutcomeRejected
		return abort, nil
	}
	return proceed, nil
}

func (w *Workflow) store(ctx context.Context, state *WorkflowState) (transition, error) {
	if err := w.dedup.Set(ctx, state.Record.URL, state.Record); err != nil {
		return 0, fmt.Errorf("record submission: %w", err)
	}
	return proceed, nil
}

func (w *Workflow) debug(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}
