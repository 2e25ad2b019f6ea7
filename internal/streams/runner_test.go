package streams

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

// stubDriver emits a fixed number of records, then fails with err if set.
type stubDriver struct {
	name    string
	records int
	err     error
	reads   int
}

func (d *stubDriver) Name() string           { return d.name }
func (d *stubDriver) Schema() map[string]any { return map[string]any{"type": "object"} }
func (d *stubDriver) Read(_ context.Context, emitter *protocol.Emitter) (Result, error) {
	d.reads++
	for i := 0; i < d.records; i++ {
		if err := emitter.Record(d.name, map[string]any{"id": fmt.Sprintf("%s-%d", d.name, i)}); err != nil {
			return Result{Records: i}, err
		}
	}
	return Result{Records: d.records}, d.err
}

func TestRunner_AllStreamsSucceed(t *testing.T) {
	messages := &stubDriver{name: StreamMessages, records: 3}
	labels := &stubDriver{name: StreamLabels, records: 2}

	var buf bytes.Buffer
	runner := NewRunner(messages, labels)
	err := runner.Run(context.Background(), protocol.NewEmitter(&buf), []string{StreamMessages, StreamLabels})

	require.NoError(t, err)
	assert.Equal(t, 1, messages.reads)
	assert.Equal(t, 1, labels.reads)

	msgs := decodeMessages(t, &buf)
	assert.Len(t, recordsFor(msgs, StreamMessages), 3)
	assert.Len(t, recordsFor(msgs, StreamLabels), 2)

	// One state message per stream, both reporting success.
	var states []*protocol.State
	for _, m := range msgs {
		if m.Type == protocol.MessageTypeState {
			states = append(states, m.State)
		}
	}
	require.Len(t, states, 2)
	for _, s := range states {
		assert.Equal(t, true, s.Data["success"])
		assert.NotEmpty(t, s.Data["run_id"])
	}
}

func TestRunner_StreamFailureIsIsolated(t *testing.T) {
	failing := &stubDriver{
		name: StreamMessages,
		err:  fmt.Errorf("page 3: %w", google.ErrRetriesExhausted),
	}
	healthy := &stubDriver{name: StreamLabels, records: 4}

	var buf bytes.Buffer
	runner := NewRunner(failing, healthy)
	err := runner.Run(context.Background(), protocol.NewEmitter(&buf), []string{StreamMessages, StreamLabels})

	require.NoError(t, err, "run succeeds while at least one stream succeeds")
	assert.Equal(t, 1, healthy.reads, "failure in one stream must not stop the other")

	msgs := decodeMessages(t, &buf)
	var hasError bool
	for _, m := range msgs {
		if m.Type == protocol.MessageTypeLog && m.Log.Level == protocol.LogLevelError {
			hasError = true
		}
	}
	assert.True(t, hasError, "stream failure is reported as a structured log")
}

func TestRunner_AllStreamsFailed(t *testing.T) {
	boom := errors.New("boom")
	runner := NewRunner(
		&stubDriver{name: StreamMessages, err: boom},
		&stubDriver{name: StreamLabels, err: boom},
	)

	var buf bytes.Buffer
	err := runner.Run(context.Background(), protocol.NewEmitter(&buf), []string{StreamMessages, StreamLabels})

	assert.ErrorIs(t, err, ErrAllStreamsFailed)
}

func TestRunner_UnknownStreamRejectedBeforeReading(t *testing.T) {
	messages := &stubDriver{name: StreamMessages, records: 1}
	runner := NewRunner(messages)

	var buf bytes.Buffer
	err := runner.Run(context.Background(), protocol.NewEmitter(&buf), []string{StreamMessages, "calendars"})

	assert.ErrorIs(t, err, ErrUnknownStream)
	assert.Zero(t, messages.reads, "selection is validated before any stream runs")
}

func TestRunner_AuthFailureAbortsRun(t *testing.T) {
	rejected := &stubDriver{
		name: StreamMessages,
		err:  &googleapi.Error{Code: http.StatusUnauthorized},
	}
	never := &stubDriver{name: StreamLabels, records: 1}

	var buf bytes.Buffer
	runner := NewRunner(rejected, never)
	err := runner.Run(context.Background(), protocol.NewEmitter(&buf), []string{StreamMessages, StreamLabels})

	require.Error(t, err)
	assert.Zero(t, never.reads, "rejected credentials abort the whole run")
}

func TestRunner_CancellationStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cancelled := &stubDriver{name: StreamMessages, err: ctx.Err()}
	never := &stubDriver{name: StreamLabels, records: 1}

	var buf bytes.Buffer
	runner := NewRunner(cancelled, never)
	err := runner.Run(ctx, protocol.NewEmitter(&buf), []string{StreamMessages, StreamLabels})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, never.reads)
}
