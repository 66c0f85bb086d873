package model

import (
	"fmt"
	"strings"
)

// Priority orders tasks inside a group. Lower values sort first.
type Priority int

const (
	High Priority = iota
	Medium
	Low
)

// Display is what a presentation layer needs to draw a priority.
type Display struct {
	Label string
	Color string // hex, e.g. "#EF5350"
}

// PriorityDisplay is the fixed label/color table keyed by priority.
var PriorityDisplay = map[Priority]Display{
	High:   {Label: "High", Color: "#EF5350"},
	Medium: {Label: "Medium", Color: "#FF9800"},
	Low:    {Label: "Low", Color: "#66BB6A"},
}

// Priorities lists every priority in sort order.
func Priorities() []Priority { return []Priority{High, Medium, Low} }

// Valid reports whether p is one of High, Medium, Low.
func (p Priority) Valid() bool {
	_, ok := PriorityDisplay[p]
	return ok
}

// Rank is the sort key: High=0, Medium=1, Low=2.
func (p Priority) Rank() int { return int(p) }

func (p Priority) Label() string {
	if d, ok := PriorityDisplay[p]; ok {
		return d.Label
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

func (p Priority) Color() string {
	return PriorityDisplay[p].Color
}

func (p Priority) String() string { return strings.ToLower(p.Label()) }

// Next cycles High -> Medium -> Low -> High.
func (p Priority) Next() Priority {
	if !p.Valid() || p == Low {
		return High
	}
	return p + 1
}

// ParsePriority accepts full names and single-letter shorthands, any case.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return High, nil
	case "medium", "med", "m":
		return Medium, nil
	case "low", "l":
		return Low, nil
	}
	return 0, fmt.Errorf("unknown priority %q (want high, medium or low)", s)
}

func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
