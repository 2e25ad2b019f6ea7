// Package protocol implements the Airbyte message envelope the connector
// speaks on stdout: one JSON object per line, each carrying exactly one of
// a record, state, log, spec, connection status or catalog payload.
package protocol

import (
	"github.com/saif-qureshi/airbyte-source-gmail/internal/catalog"
)

// MessageType identifies the payload carried by a Message.
type MessageType string

const (
	// MessageTypeRecord carries a single stream record.
	MessageTypeRecord MessageType = "RECORD"
	// MessageTypeState carries sync state.
	MessageTypeState MessageType = "STATE"
	// MessageTypeLog carries a log line for the orchestrator.
	MessageTypeLog MessageType = "LOG"
	// MessageTypeSpec carries the connector specification.
	MessageTypeSpec MessageType = "SPEC"
	// MessageTypeConnectionStatus carries the result of a connection check.
	MessageTypeConnectionStatus MessageType = "CONNECTION_STATUS"
	// MessageTypeCatalog carries the discovered stream catalog.
	MessageTypeCatalog MessageType = "CATALOG"
)

// LogLevel is the severity of a LOG message.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// StatusSucceeded and StatusFailed are the two connection check outcomes.
// Both are reported with exit code 0: a failed check is a status report,
// not a crash.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
)

// Message is the top-level envelope. Exactly one payload field is set,
// matching Type.
type Message struct {
	Type             MessageType             `json:"type"`
	Record           *Record                 `json:"record,omitempty"`
	State            *State                  `json:"state,omitempty"`
	Log              *Log                    `json:"log,omitempty"`
	Spec             *ConnectorSpecification `json:"spec,omitempty"`
	ConnectionStatus *ConnectionStatus       `json:"connectionStatus,omitempty"`
	Catalog          *catalog.Catalog        `json:"catalog,omitempty"`
}

// Record is one emitted data record.
type Record struct {
	Stream    string         `json:"stream"`
	Data      map[string]any `json:"data"`
	EmittedAt int64          `json:"emitted_at"`
}

// State is an arbitrary state blob. The connector is full-refresh only, so
// state carries per-stream completion summaries rather than cursors.
type State struct {
	Data map[string]any `json:"data"`
}

// Log is an operator-visible log line.
type Log struct {
	Level   LogLevel `json:"level"`
	Message string   `json:"message"`
}

// ConnectorSpecification describes the connector and the JSON schema of its
// configuration.
type ConnectorSpecification struct {
	DocumentationURL        string         `json:"documentationUrl,omitempty"`
	ConnectionSpecification map[string]any `json:"connectionSpecification"`
}

// ConnectionStatus is the result of the check command.
type ConnectionStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
