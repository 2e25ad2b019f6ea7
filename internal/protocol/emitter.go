package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/catalog"
)

// Emitter serialises protocol messages as JSON lines. It is safe for
// concurrent use: each message is written atomically under a mutex so
// independently running streams never interleave partial lines.
type Emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

// NewEmitter creates an Emitter writing to w, normally os.Stdout.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (e *Emitter) emit(m Message) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enc.Encode(m)
}

// Record emits one data record for the named stream, stamped with the
// current time in epoch milliseconds.
func (e *Emitter) Record(stream string, data map[string]any) error {
	return e.emit(Message{
		Type: MessageTypeRecord,
		Record: &Record{
			Stream:    stream,
			Data:      data,
			EmittedAt: e.now().UnixMilli(),
		},
	})
}

// State emits a state message.
func (e *Emitter) State(data map[string]any) error {
	return e.emit(Message{
		Type:  MessageTypeState,
		State: &State{Data: data},
	})
}

// Log emits a formatted log message at the given level.
func (e *Emitter) Log(level LogLevel, format string, args ...any) error {
	return e.emit(Message{
		Type: MessageTypeLog,
		Log:  &Log{Level: level, Message: fmt.Sprintf(format, args...)},
	})
}

// Spec emits the connector specification.
func (e *Emitter) Spec(spec *ConnectorSpecification) error {
	return e.emit(Message{Type: MessageTypeSpec, Spec: spec})
}

// Status emits a connection status message.
func (e *Emitter) Status(succeeded bool, message string) error {
	status := StatusSucceeded
	if !succeeded {
		status = StatusFailed
	}
	return e.emit(Message{
		Type:             MessageTypeConnectionStatus,
		ConnectionStatus: &ConnectionStatus{Status: status, Message: message},
	})
}

// Catalog emits the discovered catalog.
func (e *Emitter) Catalog(c *catalog.Catalog) error {
	return e.emit(Message{Type: MessageTypeCatalog, Catalog: c})
}
