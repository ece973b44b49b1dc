package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// noteRecord is the wire form of a Note. Timestamps travel as strings so the
// rest of the domain never manipulates raw timestamp text.
type noteRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Starred   bool     `json:"isStarred"`
	Archived  bool     `json:"isArchived"`
}

// EncodeNotes serializes a note list to the stored JSON form.
func EncodeNotes(notes []Note) (string, error) {
	records := make([]noteRecord, len(notes))
	for i, n := range notes {
		records[i] = noteRecord{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Tags:      n.Tags,
			CreatedAt: n.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt: n.UpdatedAt.Format(time.RFC3339Nano),
			Starred:   n.Starred,
			Archived:  n.Archived,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal notes: %w", err)
	}
	return string(data), nil
}

// DecodeNotes deserializes the stored JSON form back into notes,
// reconstructing the timestamp fields into comparable time values.
func DecodeNotes(value string) ([]Note, error) {
	var records []noteRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}

	notes := make([]Note, len(records))
	for i, rec := range records {
		createdAt, err := parseTimestamp(rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %s: createdAt: %w", rec.ID, err)
		}
		updatedAt, err := parseTimestamp(rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %s: updatedAt: %w", rec.ID, err)
		}
		notes[i] = Note{
			ID:        rec.ID,
			Title:     rec.Title,
			Content:   rec.Content,
			Tags:      rec.Tags,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			Starred:   rec.Starred,
			Archived:  rec.Archived,
		}
	}
	return notes, nil
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
