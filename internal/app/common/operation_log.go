package common

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dishmate/internal/domain/model"
	"dishmate/internal/infra/logging"
)

const SchemaVersion = "1.0"

// NewRequestID tags one invocation in the advice log.
func NewRequestID() string { return uuid.NewString() }

// LogAdvice records the outcome of a command. A nil logger is treated as
// disabled.
func LogAdvice(ctx context.Context, logger logging.Logger, command, outcome, detail string, took time.Duration) error {
	if logger == nil {
		return nil
	}
	return logger.Log(ctx, model.AdviceLogEntry{
		Timestamp:  time.Now().UTC(),
		RequestID:  NewRequestID(),
		Command:    command,
		Outcome:    outcome,
		Detail:     detail,
		DurationMS: took.Milliseconds(),
	})
}

// Envelope wraps a result the way every command reports it and logs the
// outcome. Logging failures never change the result.
func Envelope(ctx context.Context, app *AppContext, command string, start time.Time, outcome, detail string, result any) model.CommandResult {
	took := time.Since(start)
	if app != nil {
		_ = LogAdvice(ctx, app.Logger, command, outcome, detail, took)
	}
	return model.CommandResult{
		SchemaVersion: SchemaVersion,
		Command:       command,
		Timestamp:     time.Now().UTC(),
		DurationMS:    took.Milliseconds(),
		Result:        result,
	}
}
