package plss

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Meridian identifies the principal meridian a township/range numbering is
// measured from. Locations under different meridians are never comparable.
type Meridian string

const (
	// MeridianIndian covers most of Oklahoma east of the panhandle.
	MeridianIndian Meridian = "IM"
	// MeridianCimarron covers the Oklahoma panhandle.
	MeridianCimarron Meridian = "CM"
)

// Valid reports whether m is a known principal meridian.
func (m Meridian) Valid() bool {
	return m == MeridianIndian || m == MeridianCimarron
}

// Location is a canonical Section-Township-Range-Meridian (STR) position in
// the Public Land Survey System. The zero value is not a valid location; use
// NewLocation or ParseSTR to construct one.
//
// Canonical form has no leading zeros ("7N", never "07N"). Two locations are
// equal iff all four fields are equal, meridian included.
type Location struct {
	Section  int      `json:"section"`
	Township string   `json:"township"`
	Range    string   `json:"range"`
	Meridian Meridian `json:"meridian"`
}

var (
	townshipPattern = regexp.MustCompile(`^(\d{1,2})([NS])$`)
	rangePattern    = regexp.MustCompile(`^(\d{1,2})([EW])$`)
)

// NewLocation validates and canonicalizes an STR tuple. Leading zeros in the
// township and range numbers are stripped; the section must be 1-36; the
// township direction must be N or S, the range direction E or W.
func NewLocation(section int, township, rng string, meridian Meridian) (Location, error) {
	if section < 1 || section > 36 {
		return Location{}, fmt.Errorf("section must be between 1 and 36, got %d", section)
	}

	township, err := canonicalOrdinal(township, townshipPattern)
	if err != nil {
		return Location{}, fmt.Errorf("invalid township %q: %w", township, err)
	}

	rng, err = canonicalOrdinal(rng, rangePattern)
	if err != nil {
		return Location{}, fmt.Errorf("invalid range %q: %w", rng, err)
	}

	if !meridian.Valid() {
		return Location{}, fmt.Errorf("invalid meridian %q", meridian)
	}

	return Location{
		Section:  section,
		Township: township,
		Range:    rng,
		Meridian: meridian,
	}, nil
}

// canonicalOrdinal normalizes a township or range string ("07N" -> "7N") and
// validates it against the given pattern.
func canonicalOrdinal(s string, pattern *regexp.Regexp) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	trimmed := strings.TrimLeft(s, "0")
	if !pattern.MatchString(trimmed) {
		return "", fmt.Errorf("does not match number-plus-direction form")
	}
	return trimmed, nil
}

// Equal reports whether two locations refer to the same section. Meridian is
// part of the comparison: identical STR values under different meridians are
// distinct places.
func (l Location) Equal(other Location) bool {
	return l == other
}

// SameTract reports whether two locations share section, township, and range,
// ignoring meridian. Lateral-section tuples recorded without a meridian are
// compared this way, with the meridian checked separately at the well level.
func (l Location) SameTract(other Location) bool {
	return l.Section == other.Section && l.Township == other.Township && l.Range == other.Range
}

// String renders the canonical "sec-twn-rng-mer" form, e.g. "15-9N-5W-IM".
func (l Location) String() string {
	return fmt.Sprintf("%d-%s-%s-%s", l.Section, l.Township, l.Range, l.Meridian)
}

// ParseSTR parses a free-text STR string of the form "15-9N-5W-IM" as seen in
// upstream legal-description fields. It tolerates common survey prefixes
// ("Sec 15", "T9N", "R5W"), strips leading zeros, defaults a missing township
// direction to N and a missing range direction to W, and defaults the meridian
// to IM when the fourth component is absent. Anything failing the canonical
// invariants is rejected.
func ParseSTR(s string) (Location, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 && len(parts) != 4 {
		return Location{}, fmt.Errorf("expected 3 or 4 dash-separated components, got %d", len(parts))
	}

	secStr := strings.ToUpper(strings.TrimSpace(parts[0]))
	secStr = strings.TrimPrefix(secStr, "SEC")
	secStr = strings.TrimPrefix(secStr, "S")
	secStr = strings.TrimSpace(strings.TrimPrefix(secStr, "."))
	section, err := strconv.Atoi(secStr)
	if err != nil {
		return Location{}, fmt.Errorf("invalid section %q: %w", parts[0], err)
	}

	township := strings.ToUpper(strings.TrimSpace(parts[1]))
	township = strings.TrimPrefix(township, "T")
	if township != "" && !strings.ContainsAny(township, "NS") {
		township += "N"
	}

	rng := strings.ToUpper(strings.TrimSpace(parts[2]))
	rng = strings.TrimPrefix(rng, "R")
	if rng != "" && !strings.ContainsAny(rng, "EW") {
		rng += "W"
	}

	meridian := MeridianIndian
	if len(parts) == 4 {
		meridian = Meridian(strings.ToUpper(strings.TrimSpace(parts[3])))
	}

	return NewLocation(section, township, rng, meridian)
}
