package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Snapshot is the typed export of a finished session's profile. Pointer
// fields distinguish absent values (nil) from empty ones, so a user_exit
// session serializes honestly.
type Snapshot struct {
	FullName        *string   `json:"full_name"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	ExperienceYears *float64  `json:"experience_years"`
	DesiredPosition *string   `json:"desired_position"`
	Location        *string   `json:"location"`
	TechStack       []string  `json:"tech_stack"`
	EndedReason     string    `json:"ended_reason"`
	SavedAt         time.Time `json:"saved_at"`
}

var requiredKeys = []string{
	"full_name", "email", "phone", "experience_years",
	"desired_position", "location", "tech_stack",
}

// FromProfile decodes the engine's field-name-to-value snapshot map into a
// typed Snapshot. All seven field keys must be present, absent values as nil.
func FromProfile(fields map[string]any, endedReason string) (*Snapshot, error) {
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("snapshot is missing field %q", key)
		}
	}

	snapshot := &Snapshot{}
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   snapshot,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build snapshot decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snapshot.EndedReason = endedReason
	snapshot.SavedAt = time.Now().UTC()
	return snapshot, nil
}

// WriteFile stores the snapshot as indented JSON under dir, creating the
// directory when needed. The filename carries a timestamp so repeated saves
// never collide within a second-resolution clock.
func (s *Snapshot) WriteFile(dir string) (string, error) {
	if dir == "" {
		dir = "data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	payload, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("candidate_%s.json", s.SavedAt.Format("20060102150405")))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}
