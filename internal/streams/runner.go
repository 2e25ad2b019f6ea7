package streams

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

// ErrUnknownStream indicates the configured catalog selected a stream the
// connector does not provide.
var ErrUnknownStream = errors.New("unknown stream")

// ErrAllStreamsFailed indicates no selected stream completed. The read
// exits nonzero only in this case: partial success is still success.
var ErrAllStreamsFailed = errors.New("no stream completed successfully")

// Runner executes the selected stream drivers sequentially and isolates
// per-stream failure.
type Runner struct {
	drivers map[string]Driver
	order   []string
	runID   string
}

// NewRunner creates a runner over the given drivers. Each run is stamped
// with a fresh run ID so log and state messages from different runs can be
// told apart downstream.
func NewRunner(drivers ...Driver) *Runner {
	r := &Runner{
		drivers: make(map[string]Driver, len(drivers)),
		runID:   uuid.NewString(),
	}
	for _, d := range drivers {
		r.drivers[d.Name()] = d
		r.order = append(r.order, d.Name())
	}
	return r
}

// Drivers returns the registered drivers in registration order.
func (r *Runner) Drivers() []Driver {
	out := make([]Driver, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.drivers[name])
	}
	return out
}

// Run reads the named streams in order. A stream-level failure is logged
// and recorded in state, and the run continues with the remaining streams.
// Run returns an error only when the selection is invalid, the run is
// cancelled, auth is rejected mid-run, or every selected stream failed.
func (r *Runner) Run(ctx context.Context, emitter *protocol.Emitter, selected []string) error {
	// Validate the whole selection before any network traffic.
	for _, name := range selected {
		if _, ok := r.drivers[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStream, name)
		}
	}

	succeeded := 0
	for _, name := range selected {
		driver := r.drivers[name]

		_ = emitter.Log(protocol.LogLevelInfo, "starting stream %s (run %s)", name, r.runID)
		logger.Section(name)

		result, err := driver.Read(ctx, emitter)

		state := map[string]any{
			"stream":  name,
			"run_id":  r.runID,
			"records": result.Records,
			"skipped": result.Skipped,
			"success": err == nil,
		}

		switch {
		case err == nil:
			succeeded++
			_ = emitter.Log(protocol.LogLevelInfo,
				"stream %s complete: %d records emitted, %d items skipped",
				name, result.Records, result.Skipped)

		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			_ = emitter.State(state)
			_ = emitter.Log(protocol.LogLevelError, "stream %s cancelled after %d records", name, result.Records)
			return err

		case google.IsAuthRejected(err) || google.IsUnauthorized(err):
			// Credential failures cannot recover by moving to another
			// stream; abort the run.
			_ = emitter.State(state)
			_ = emitter.Log(protocol.LogLevelError, "stream %s: authentication failed: %v", name, err)
			return err

		default:
			// Stream-level failure (for example, retries exhausted on a
			// page fetch) aborts this stream only.
			_ = emitter.Log(protocol.LogLevelError, "stream %s failed: %v", name, err)
		}

		_ = emitter.State(state)
	}

	if succeeded == 0 {
		return fmt.Errorf("%w (run %s)", ErrAllStreamsFailed, r.runID)
	}
	return nil
}
