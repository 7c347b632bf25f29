// Package category defines the named, colored groupings of important dates.
package category

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default is the category entries fall into when none is given. It
	// always exists and cannot be removed.
	Default = "General"
	// DefaultColor is used for the default category and for categories
	// created implicitly.
	DefaultColor = ColorCyan
)

// ErrInvalid is returned when a category fails validation.
var ErrInvalid = errors.New("invalid category")

// Category is a named grouping with a display color.
type Category struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// New validates name and color. An empty color selects DefaultColor.
func New(name, color string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	c, err := ParseColor(color)
	if err != nil {
		return Category{}, err
	}
	return Category{Name: name, Color: c}, nil
}

// IsDefault reports whether name is the protected default category.
func IsDefault(name string) bool {
	return name == Default
}
