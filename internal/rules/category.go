package rules

import (
	"fmt"
	"strings"
)

// Category groups rules by the part of the law book they enforce.
type Category int

const (
	Unknown Category = iota
	Typography
	Spacing
	Color
)

// Categories lists every known category in reporting order.
var Categories = []Category{Typography, Spacing, Color}

func (c Category) String() string {
	switch c {
	case Typography:
		return "typography"
	case Spacing:
		return "spacing"
	case Color:
		return "color"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name into a Category value.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "typography":
		return Typography, nil
	case "spacing":
		return Spacing, nil
	case "color", "colour":
		return Color, nil
	default:
		return Unknown, fmt.Errorf("unknown category %q", name)
	}
}
