// SPDX-License-Identifier: Apache-2.0

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Point is a geographic coordinate pair persisted in a PostgreSQL "point"
// column. On the wire it is a JSON object {"x": ..., "y": ...}; towards the
// database it travels as the textual point literal "(x, y)".
//
// Encoding uses strconv.FormatFloat with precision -1, so the shortest exact
// decimal representation of each coordinate is preserved on round-trip.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Literal returns the textual point form "(x, y)" expected by the
// "coordenada" column.
func (p Point) Literal() string {
	return "(" + formatCoordinate(p.X) + ", " + formatCoordinate(p.Y) + ")"
}

// ParsePoint converts a textual point literal back into a Point. Both the
// "(x, y)" form produced by Literal and the "(x,y)" form PostgreSQL emits
// are accepted.
func ParsePoint(s string) (Point, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return Point{}, fmt.Errorf("invalid point literal %q", s)
	}

	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point literal %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point x coordinate in %q: %w", s, err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point y coordinate in %q: %w", s, err)
	}

	return Point{X: x, Y: y}, nil
}

// Value implements driver.Valuer so a Point can be passed as a single
// positional statement parameter.
func (p Point) Value() (driver.Value, error) {
	return p.Literal(), nil
}

// Scan implements sql.Scanner so a "coordenada" column scans directly into a
// Point field.
func (p *Point) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*p = Point{}
		return nil
	case string:
		parsed, err := ParsePoint(value)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		parsed, err := ParsePoint(string(value))
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Point", src)
	}
}

// MarshalJSON renders the point as the {"x", "y"} object clients exchange.
func (p Point) MarshalJSON() ([]byte, error) {
	type alias Point
	return json.Marshal(alias(p))
}

// UnmarshalJSON accepts either the {"x", "y"} object form or a textual point
// literal string.
func (p *Point) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var literal string
		if err := json.Unmarshal(data, &literal); err != nil {
			return err
		}

		parsed, err := ParsePoint(literal)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	type alias Point
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*p = Point(a)
	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
