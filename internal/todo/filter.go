package todo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFilter = errors.New("todo: unknown filter")

// Filter selects which entries are visible.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters returns every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

func (f Filter) Fits(e Entry) bool {
	switch f {
	case FilterActive:
		return !e.Completed
	case FilterCompleted:
		return e.Completed
	default:
		return true
	}
}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func (f Filter) Href() string {
	switch f {
	case FilterActive:
		return "#/active"
	case FilterCompleted:
		return "#/completed"
	default:
		return "#/"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	filters := Filters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// ParseFilter accepts a filter name or its href, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Filters() {
		if v == strings.ToLower(f.String()) || v == f.Href() {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}
