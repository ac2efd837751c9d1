package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/loopd/ent"
	"github.com/codeready-toolchain/loopd/ent/outboxaction"
)

// Sink is the outbound side-effect surface the executor dispatches to.
// Implementations talk to GitHub, the task queue, and telemetry; the core
// only sees this interface.
type Sink interface {
	PublishStatusComment(ctx context.Context, loopID string, payload map[string]interface{}) error
	PublishCheckSummary(ctx context.Context, loopID string, payload map[string]interface{}) error
	PublishVideoLink(ctx context.Context, loopID string, payload map[string]interface{}) error
	EmitTelemetry(ctx context.Context, loopID string, payload map[string]interface{}) error
	EnqueueFixTask(ctx context.Context, loopID string, payload map[string]interface{}) error
}

// SinkError lets a sink report a classified, possibly terminal failure.
// Unclassified errors are treated as retriable unknowns.
type SinkError struct {
	Class     string // auth | quota | script | infra | unknown
	Code      string
	Retriable bool
	Err       error
}

func (e *SinkError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *SinkError) Unwrap() error { return e.Err }

// Executor runs one claimed outbox action end to end: dispatch to the sink,
// classify the outcome, and feed it back through Complete.
type Executor struct {
	service *Service
	sink    Sink
	logger  *slog.Logger
}

func NewExecutor(service *Service, sink Sink, logger *slog.Logger) *Executor {
	return &Executor{service: service, sink: sink, logger: logger}
}

// Execute dispatches the action and completes it with the classified result.
func (e *Executor) Execute(ctx context.Context, action *ent.OutboxAction, leaseOwner string, now time.Time) (*ent.OutboxAction, error) {
	err := e.dispatch(ctx, action)
	in := CompleteInput{
		OutboxID:   action.ID,
		LeaseOwner: leaseOwner,
		Succeeded:  err == nil,
	}
	if err != nil {
		class, code, retriable := classify(err)
		in.Retriable = retriable
		in.ErrorClass = class
		in.ErrorCode = code
		in.ErrorMessage = err.Error()
		e.logger.Warn("outbox action failed",
			"outbox_id", action.ID,
			"loop_id", action.LoopID,
			"action_type", action.ActionType,
			"attempt", action.AttemptCount,
			"error_class", class,
			"error", err)
	}
	return e.service.Complete(ctx, in, now)
}

func (e *Executor) dispatch(ctx context.Context, action *ent.OutboxAction) error {
	switch action.ActionType {
	case outboxaction.ActionTypePublishStatusComment:
		return e.sink.PublishStatusComment(ctx, action.LoopID, action.Payload)
	case outboxaction.ActionTypePublishCheckSummary:
		return e.sink.PublishCheckSummary(ctx, action.LoopID, action.Payload)
	case outboxaction.ActionTypePublishVideoLink:
		return e.sink.PublishVideoLink(ctx, action.LoopID, action.Payload)
	case outboxaction.ActionTypeEmitTelemetry:
		return e.sink.EmitTelemetry(ctx, action.LoopID, action.Payload)
	case outboxaction.ActionTypeEnqueueFixTask:
		return e.sink.EnqueueFixTask(ctx, action.LoopID, action.Payload)
	default:
		return &SinkError{Class: "unknown", Code: "unsupported_action_type", Retriable: false,
			Err: fmt.Errorf("unsupported action type %q", action.ActionType)}
	}
}

func classify(err error) (class, code string, retriable bool) {
	var sinkErr *SinkError
	if errors.As(err, &sinkErr) {
		return sinkErr.Class, sinkErr.Code, sinkErr.Retriable
	}
	return "unknown", "", true
}
