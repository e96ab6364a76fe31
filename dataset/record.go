// Package dataset reads, normalizes and writes speech datasets stored as one
// record per line: "id|text|speaker".
//
// Records are normalized in parallel with results kept in input order. A
// panic while normalizing one record keeps that record's original text and
// does not stop the run.
package dataset

import (
	"errors"
	"strings"
)

const (
	// DefaultSpeaker is the speaker of records that name none.
	DefaultSpeaker = "1"
	// Separator separates the fields of a record.
	Separator = "|"
)

// ErrMalformedRecord is returned for a line that is not a record.
var ErrMalformedRecord = errors.New("dataset: malformed record")

// Record is one line of a dataset.
type Record struct {
	Line    int    `json:"line"` // 1-based line number in the source
	ID      string `json:"id"`   // usually the audio file name
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// Format returns the record as a dataset line without a line break.
func (r Record) Format() string {
	return r.FormatWith(Separator)
}

// FormatWith is Format with a custom separator.
func (r Record) FormatWith(sep string) string {
	return r.ID + sep + r.Text + sep + r.Speaker
}

// ParseRecord parses one dataset line with the default format.
func ParseRecord(line string) (Record, error) {
	return parseRecord(line, Separator, DefaultSpeaker)
}

// parseRecord splits a trimmed line into id, text and speaker. Fields past the
// third are ignored. A line without a separator is malformed.
func parseRecord(line, sep, speaker string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, sep) {
		return Record{}, ErrMalformedRecord
	}

	parts := strings.Split(line, sep)
	r := Record{ID: parts[0], Text: parts[1], Speaker: speaker}
	if len(parts) > 2 {
		r.Speaker = parts[2]
	}
	return r, nil
}
