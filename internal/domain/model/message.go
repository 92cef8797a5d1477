package model

import "strings"

// Type is the coarse severity category of a notification (e.g. info, failure).
// It influences how the destination service renders the message; the exact
// rendering is owned by the dispatch library and the service behind it.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeFailure Type = "failure"
)

// ParseType normalizes a raw notifyType value to one of the known categories.
// Unknown or empty values fall back to TypeInfo; the field is best-effort and
// never rejects a payload on its own.
func ParseType(raw string) Type {
	switch t := Type(strings.ToLower(raw)); t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeFailure:
		return t
	default:
		return TypeInfo
	}
}

// Message is the validated notification content handed to the dispatcher.
// It is technology-agnostic and does not contain any JSON tags.
type Message struct {
	Title string // The subject or title of the notification.
	Body  string // The main content of the notification.
	Type  Type
}
