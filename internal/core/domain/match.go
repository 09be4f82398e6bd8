package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Score is the compatibility of two users.
type Score struct {
	// Aspects holds each named aspect's contribution.
	Aspects map[string]float64 `json:"aspects"`

	// Overall is the sum of all aspect contributions.
	Overall float64 `json:"overall"`
}

// MatchRecord pairs two users whose score meets both users' requirements.
// It is produced by the matches view and never stored on its own.
type MatchRecord struct {
	A     string
	B     string
	Score Score
}

// Includes reports whether uid is one side of the match.
func (m MatchRecord) Includes(uid string) bool {
	return m.A == uid || m.B == uid
}

// Partner returns the other side of the match for uid.
func (m MatchRecord) Partner(uid string) string {
	if m.A == uid {
		return m.B
	}
	return m.A
}

// MarshalJSON encodes the record as [a, b, score].
func (m MatchRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.A, m.B, m.Score})
}

// UnmarshalJSON decodes the [a, b, score] form.
func (m *MatchRecord) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("match record: expected 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &m.A); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &m.B); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &m.Score)
}

// SortedAspects returns aspect names in lexical order.
func (s Score) SortedAspects() []string {
	names := make([]string, 0, len(s.Aspects))
	for name := range s.Aspects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
