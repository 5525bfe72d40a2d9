package exercisedb

import (
	"encoding/json"
	"strings"
)

// Exercise mirrors a single ExerciseDB record. Fields the pipeline does not
// interpret are kept in Extra and written back on marshal.
type Exercise struct {
	ID               string
	Name             string
	Target           string
	Equipment        string
	BodyPart         string
	GifURL           string
	SecondaryMuscles []string
	Instructions     []string
	Extra            map[string]json.RawMessage
}

type exerciseWire struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	BodyPart         string   `json:"bodyPart"`
	GifURL           string   `json:"gifUrl,omitempty"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
}

var knownFields = map[string]struct{}{
	"id":               {},
	"name":             {},
	"target":           {},
	"equipment":        {},
	"bodyPart":         {},
	"gifUrl":           {},
	"secondaryMuscles": {},
	"instructions":     {},
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	var wire exerciseWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	*e = Exercise{
		ID:               wire.ID,
		Name:             wire.Name,
		Target:           wire.Target,
		Equipment:        wire.Equipment,
		BodyPart:         wire.BodyPart,
		GifURL:           wire.GifURL,
		SecondaryMuscles: wire.SecondaryMuscles,
		Instructions:     wire.Instructions,
	}
	for k, v := range all {
		if _, ok := knownFields[k]; ok {
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]json.RawMessage)
		}
		e.Extra[k] = v
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e Exercise) MarshalJSON() ([]byte, error) {
	wire, err := json.Marshal(exerciseWire{
		ID:               e.ID,
		Name:             e.Name,
		Target:           e.Target,
		Equipment:        e.Equipment,
		BodyPart:         e.BodyPart,
		GifURL:           e.GifURL,
		SecondaryMuscles: e.SecondaryMuscles,
		Instructions:     e.Instructions,
	})
	if err != nil || len(e.Extra) == 0 {
		return wire, err
	}
	merged := make(map[string]json.RawMessage, len(e.Extra)+len(knownFields))
	for k, v := range e.Extra {
		merged[k] = v
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(wire, &known); err != nil {
		return nil, err
	}
	for k, v := range known {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Matches reports whether term is a substring of the name, target, equipment
// or body part, ignoring case. An empty term matches everything.
func (e Exercise) Matches(term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, field := range [...]string{e.Name, e.Target, e.Equipment, e.BodyPart} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
