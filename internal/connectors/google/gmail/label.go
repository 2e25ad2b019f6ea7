package gmail

import (
	gmailapi "google.golang.org/api/gmail/v1"
)

// MapLabel converts a raw Gmail label into the labels stream record shape.
// Labels arrive fully populated from the list call; no detail fetch is
// needed.
func MapLabel(label *gmailapi.Label) map[string]any {
	record := map[string]any{
		"id":              label.Id,
		"name":            label.Name,
		"type":            orNil(label.Type),
		"messages_total":  label.MessagesTotal,
		"messages_unread": label.MessagesUnread,
		"threads_total":   label.ThreadsTotal,
		"threads_unread":  label.ThreadsUnread,
	}

	if label.Color != nil {
		record["color"] = map[string]any{
			"text_color":       orNil(label.Color.TextColor),
			"background_color": orNil(label.Color.BackgroundColor),
		}
	}

	return record
}
