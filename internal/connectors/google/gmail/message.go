package gmail

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"
)

// ErrMalformedMessage indicates a message payload that cannot be mapped to
// a record. The item is skipped and counted; it is never fatal.
var ErrMalformedMessage = errors.New("gmail: malformed message payload")

// recordedHeaders maps the header names kept in records (lowercased) to
// their record field names.
var recordedHeaders = map[string]string{
	"from":       "from",
	"to":         "to",
	"cc":         "cc",
	"bcc":        "bcc",
	"subject":    "subject",
	"date":       "date",
	"message-id": "message_id",
	"reply-to":   "reply_to",
}

// Attachment is attachment metadata. Content bytes are never fetched.
type Attachment struct {
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	AttachmentID string `json:"attachment_id,omitempty"`
}

// ParseHeaders extracts the recorded header subset into a map keyed by
// record field name. Values are kept as-is; when a header repeats, the
// first occurrence wins.
func ParseHeaders(headers []*gmailapi.MessagePartHeader) map[string]string {
	out := make(map[string]string)
	for _, h := range headers {
		if h == nil {
			continue
		}
		field, ok := recordedHeaders[strings.ToLower(h.Name)]
		if !ok {
			continue
		}
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = h.Value
	}
	return out
}

// ParseParts walks a (possibly nested multipart) body tree depth-first,
// left-to-right, and returns the first text/plain part, the first text/html
// part, and the metadata of every attachment part (any part carrying a
// filename). First match wins for each MIME type.
func ParseParts(payload *gmailapi.MessagePart) (plain, html string, attachments []Attachment) {
	attachments = []Attachment{}
	if payload == nil {
		return "", "", attachments
	}

	var walk func(part *gmailapi.MessagePart)
	walk = func(part *gmailapi.MessagePart) {
		if part == nil {
			return
		}

		switch {
		case part.Filename != "":
			att := Attachment{
				Filename: part.Filename,
				MimeType: part.MimeType,
			}
			if part.Body != nil {
				att.Size = part.Body.Size
				att.AttachmentID = part.Body.AttachmentId
			}
			attachments = append(attachments, att)
		case part.MimeType == "text/plain" && plain == "":
			plain = decodeBody(part.Body)
		case part.MimeType == "text/html" && html == "":
			html = decodeBody(part.Body)
		}

		for _, sub := range part.Parts {
			walk(sub)
		}
	}
	walk(payload)

	return plain, html, attachments
}

// decodeBody decodes a base64url body. Gmail emits unpadded data for some
// parts, so both alphabets are tried. Undecodable data maps to empty.
func decodeBody(body *gmailapi.MessagePartBody) string {
	if body == nil || body.Data == "" {
		return ""
	}
	raw, err := base64.URLEncoding.DecodeString(body.Data)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(body.Data)
		if err != nil {
			return ""
		}
	}
	return string(raw)
}

// MapMessage converts a raw Gmail message into the messages stream record
// shape. Missing optional fields map to null, never to fabricated defaults.
func MapMessage(msg *gmailapi.Message, includeRaw bool) (map[string]any, error) {
	if msg == nil || msg.Id == "" {
		return nil, ErrMalformedMessage
	}
	if msg.Payload == nil {
		return nil, fmt.Errorf("%w: message %s has no payload", ErrMalformedMessage, msg.Id)
	}

	headers := ParseHeaders(msg.Payload.Headers)
	plain, html, attachments := ParseParts(msg.Payload)

	record := map[string]any{
		"id":            msg.Id,
		"thread_id":     orNil(msg.ThreadId),
		"label_ids":     append([]string{}, msg.LabelIds...),
		"from":          headerOrNil(headers, "from"),
		"to":            headerOrNil(headers, "to"),
		"cc":            headerOrNil(headers, "cc"),
		"bcc":           headerOrNil(headers, "bcc"),
		"subject":       headerOrNil(headers, "subject"),
		"date":          headerOrNil(headers, "date"),
		"message_id":    headerOrNil(headers, "message_id"),
		"reply_to":      headerOrNil(headers, "reply_to"),
		"internal_date": internalDateRFC3339(msg.InternalDate),
		"snippet":       orNil(msg.Snippet),
		"body_plain":    orNil(SanitizeText(plain)),
		"body_html":     orNil(html),
		"attachments":   attachments,
		"size_estimate": sizeOrNil(msg.SizeEstimate),
		"history_id":    historyOrNil(msg.HistoryId),
	}

	if includeRaw {
		record["raw"] = orNil(msg.Raw)
	}

	return record, nil
}

// internalDateRFC3339 converts Gmail's epoch-millisecond internal date to
// RFC 3339 in UTC.
func internalDateRFC3339(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func headerOrNil(headers map[string]string, field string) any {
	if v, ok := headers[field]; ok {
		return v
	}
	return nil
}

func sizeOrNil(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

func historyOrNil(id uint64) any {
	if id == 0 {
		return nil
	}
	return strconv.FormatUint(id, 10)
}
