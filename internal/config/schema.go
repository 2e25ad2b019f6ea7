package config

import "github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"

// DocumentationURL points at the connector's end-user documentation.
const DocumentationURL = "https://docs.airbyte.com/integrations/sources/gmail"

// Spec returns the connector specification printed by the spec command.
func Spec() *protocol.ConnectorSpecification {
	return &protocol.ConnectorSpecification{
		DocumentationURL:        DocumentationURL,
		ConnectionSpecification: connectionSchema(),
	}
}

// connectionSchema is the JSON Schema of Config. Field order, titles and
// secret marking follow the connector's published spec.
func connectionSchema() map[string]any {
	return map[string]any{
		"$schema":  "http://json-schema.org/draft-07/schema#",
		"title":    "Gmail Source Spec",
		"type":     "object",
		"required": []string{"client_id", "client_secret", "refresh_token"},
		"properties": map[string]any{
			"client_id": map[string]any{
				"type":           "string",
				"title":          "Client ID",
				"description":    "The Client ID of your Google Cloud application",
				"airbyte_secret": true,
				"order":          0,
			},
			"client_secret": map[string]any{
				"type":           "string",
				"title":          "Client Secret",
				"description":    "The Client Secret of your Google Cloud application",
				"airbyte_secret": true,
				"order":          10,
			},
			"refresh_token": map[string]any{
				"type":           "string",
				"title":          "Refresh Token",
				"description":    "Refresh token obtained from Google OAuth flow",
				"airbyte_secret": true,
				"order":          20,
			},
			"include_spam_trash": map[string]any{
				"type":        "boolean",
				"title":       "Include Spam and Trash",
				"description": "Include messages from SPAM and TRASH folders",
				"default":     false,
				"order":       30,
			},
			"query": map[string]any{
				"type":        "string",
				"title":       "Search Query",
				"description": "Gmail search query applied when listing messages",
				"order":       40,
			},
			"labels": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"title":       "Label IDs",
				"description": "Restrict syncing to messages carrying these label IDs",
				"order":       50,
			},
			"start_date": map[string]any{
				"type":        "string",
				"title":       "Start Date",
				"description": "Only sync messages received on or after this date (ISO 8601)",
				"order":       60,
			},
			"include_raw": map[string]any{
				"type":        "boolean",
				"title":       "Include Raw Message",
				"description": "Include the base64url-encoded RFC 2822 message in each record",
				"default":     false,
				"order":       70,
			},
		},
		"additionalProperties": true,
	}
}
