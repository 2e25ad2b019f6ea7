package streams

// nullable builds a JSON Schema type union allowing null.
func nullable(t string) map[string]any {
	return map[string]any{"type": []string{"null", t}}
}

// MessagesSchema is the JSON Schema of one messages stream record.
func MessagesSchema() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"id":        map[string]any{"type": "string"},
			"thread_id": nullable("string"),
			"label_ids": map[string]any{
				"type":  []string{"null", "array"},
				"items": map[string]any{"type": "string"},
			},
			"from":       nullable("string"),
			"to":         nullable("string"),
			"cc":         nullable("string"),
			"bcc":        nullable("string"),
			"subject":    nullable("string"),
			"date":       nullable("string"),
			"message_id": nullable("string"),
			"reply_to":   nullable("string"),
			"internal_date": map[string]any{
				"type":   []string{"null", "string"},
				"format": "date-time",
			},
			"snippet":    nullable("string"),
			"body_plain": nullable("string"),
			"body_html":  nullable("string"),
			"attachments": map[string]any{
				"type": []string{"null", "array"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"filename":      nullable("string"),
						"mime_type":     nullable("string"),
						"size":          nullable("integer"),
						"attachment_id": nullable("string"),
					},
				},
			},
			"size_estimate": nullable("integer"),
			"history_id":    nullable("string"),
			"raw":           nullable("string"),
		},
		"additionalProperties": true,
	}
}

// LabelsSchema is the JSON Schema of one labels stream record.
func LabelsSchema() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"id":              map[string]any{"type": "string"},
			"name":            map[string]any{"type": "string"},
			"type":            nullable("string"),
			"messages_total":  nullable("integer"),
			"messages_unread": nullable("integer"),
			"threads_total":   nullable("integer"),
			"threads_unread":  nullable("integer"),
			"color": map[string]any{
				"type": []string{"null", "object"},
				"properties": map[string]any{
					"text_color":       nullable("string"),
					"background_color": nullable("string"),
				},
			},
		},
		"additionalProperties": true,
	}
}
