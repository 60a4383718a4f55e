package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/rclanton/strata/internal/plss"
)

// LateralSections is the JSONB column holding the sections a horizontal
// wellbore crosses, when supplied upstream as sections-affected data.
type LateralSections []plss.Location

// Scan implements sql.Scanner for reading the lateral sections column.
// Postgres returns JSONB as []byte; a NULL column leaves the slice nil.
func (ls *LateralSections) Scan(value interface{}) error {
	if value == nil {
		*ls = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan LateralSections: expected []byte, got %T", value)
	}

	var sections []plss.Location
	if err := json.Unmarshal(bytes, &sections); err != nil {
		return fmt.Errorf("failed to unmarshal lateral sections: %w", err)
	}

	*ls = sections
	return nil
}

// Value implements driver.Valuer for writing the lateral sections column.
// An empty slice is stored as NULL so "no data" and "no sections" read back
// the same way.
func (ls LateralSections) Value() (driver.Value, error) {
	if len(ls) == 0 {
		return nil, nil
	}

	data, err := json.Marshal([]plss.Location(ls))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lateral sections: %w", err)
	}
	return data, nil
}

// resolveLocation builds a canonical Location from nullable STR columns.
// Any missing or malformed component yields nil: the record is excluded from
// matching on that axis and surfaces in the engine's data-quality counts.
func resolveLocation(section *int, township, rng, meridian *string) *plss.Location {
	if section == nil || township == nil || rng == nil || meridian == nil {
		return nil
	}

	loc, err := plss.NewLocation(*section, *township, *rng, plss.Meridian(*meridian))
	if err != nil {
		return nil
	}
	return &loc
}
