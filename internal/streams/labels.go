package streams

import (
	"context"
	"fmt"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google/gmail"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

// LabelsDriver reads the labels stream. The list response already carries
// the message and thread counts, so no detail batching is needed.
type LabelsDriver struct {
	client gmail.Client
}

// NewLabelsDriver creates the labels stream driver.
func NewLabelsDriver(client gmail.Client) *LabelsDriver {
	return &LabelsDriver{client: client}
}

// Name implements Driver.
func (d *LabelsDriver) Name() string { return StreamLabels }

// Schema implements Driver.
func (d *LabelsDriver) Schema() map[string]any { return LabelsSchema() }

// Read implements Driver.
func (d *LabelsDriver) Read(ctx context.Context, emitter *protocol.Emitter) (Result, error) {
	var res Result

	labels, err := d.client.ListLabels(ctx)
	if err != nil {
		return res, fmt.Errorf("list labels: %w", err)
	}
	logger.Debug("labels: listed %d labels", len(labels))

	for _, label := range labels {
		if label == nil || label.Id == "" {
			res.Skipped++
			_ = emitter.Log(protocol.LogLevelWarn, "labels: skipping label with no id")
			continue
		}

		if err := emitter.Record(StreamLabels, gmail.MapLabel(label)); err != nil {
			return res, fmt.Errorf("emit record: %w", err)
		}
		res.Records++
	}

	return res, nil
}
