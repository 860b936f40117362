package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the textual form of date_from and date_to, dd.mm.yyyy
const DateLayout = "02.01.2006"

// dateParseLayout accepts one- or two-digit day and month
const dateParseLayout = "2.1.2006"

// ErrMalformedDate is returned when a date text doesn't match dd.mm.yyyy
var ErrMalformedDate = errors.New("malformed date")

// Field identifies one of the five settings fields
type Field int

// fields in display order
const (
	FieldChatName Field = iota
	FieldPrefix
	FieldKeywords
	FieldDateFrom
	FieldDateTo
)

// Fields lists all settings fields in the fixed display order
var Fields = []Field{FieldChatName, FieldPrefix, FieldKeywords, FieldDateFrom, FieldDateTo}

// String returns the persisted key of the field
func (f Field) String() string {
	switch f {
	case FieldChatName:
		return "chat_name"
	case FieldPrefix:
		return "prefix"
	case FieldKeywords:
		return "keywords"
	case FieldDateFrom:
		return "date_from"
	case FieldDateTo:
		return "date_to"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Settings holds parameters of a chat export run. Empty strings, nil keywords
// and nil dates mean the field is not set yet.
type Settings struct {
	ChatName string
	Prefix   string
	Keywords []string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Clone returns a deep copy of the settings
func (s Settings) Clone() Settings {
	res := s
	if s.Keywords != nil {
		res.Keywords = slices.Clone(s.Keywords)
	}
	if s.DateFrom != nil {
		d := *s.DateFrom
		res.DateFrom = &d
	}
	if s.DateTo != nil {
		d := *s.DateTo
		res.DateTo = &d
	}
	return res
}

// Snapshot renders all fields as strings in the display order.
// Unset fields render as empty strings, keywords are joined with ", ".
func (s Settings) Snapshot() []string {
	return []string{
		s.ChatName,
		s.Prefix,
		strings.Join(s.Keywords, ", "),
		FormatDate(s.DateFrom),
		FormatDate(s.DateTo),
	}
}

// Complete reports whether every snapshot entry is non-empty.
// An empty keywords list is incomplete even though it is a valid value.
func (s Settings) Complete() bool {
	for _, v := range s.Snapshot() {
		if v == "" {
			return false
		}
	}
	return true
}

// Missing returns fields with empty snapshot entries
func (s Settings) Missing() []Field {
	var res []Field
	for i, v := range s.Snapshot() {
		if v == "" {
			res = append(res, Fields[i])
		}
	}
	return res
}

// NormalizeKeywords splits raw on commas, trims and lower-cases every token
// and drops empty ones. The result is never nil.
func NormalizeKeywords(raw string) []string {
	res := []string{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		res = append(res, token)
	}
	return res
}

// ParseDate parses dd.mm.yyyy text into a calendar date
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(dateParseLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q, expected dd.mm.yyyy", ErrMalformedDate, text)
	}
	return t, nil
}

// FormatDate renders a date as dd.mm.yyyy, nil renders as empty string
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
