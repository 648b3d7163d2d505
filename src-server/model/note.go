package model

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MaxNoteLabels    = 5
	DefaultNoteColor = "bg-white"
)

type Note struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	Color     string   `json:"color" yaml:"color"`
	IsPinned  bool     `json:"isPinned" yaml:"pinned"`
	Labels    []string `json:"labels" yaml:"labels"`
	CreatedAt string   `json:"createdAt" yaml:"created_at"`
}

// Normalize trims the text fields the way the create input does.
func (n *Note) Normalize() {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	if n.Color == "" {
		n.Color = DefaultNoteColor
	}
	if n.Labels == nil {
		n.Labels = []string{}
	}
}

// Validate only requires content; the title is optional.
func (n *Note) Validate() error {
	switch {
	case strings.TrimSpace(n.Content) == "":
		return ErrEmptyContent
	case len(n.Labels) > MaxNoteLabels:
		return ErrTooManyLabels
	}
	return nil
}

// AddLabel appends label unless it is already present.
func (n *Note) AddLabel(label string) error {
	label = strings.TrimSpace(label)
	switch {
	case label == "":
		return ErrEmptyLabel
	case slices.Contains(n.Labels, label):
		return nil
	case len(n.Labels) >= MaxNoteLabels:
		return fmt.Errorf("(*Note).AddLabel: %w", ErrTooManyLabels)
	}
	n.Labels = append(n.Labels, label)
	return nil
}

// RemoveLabel reports whether the label was present.
func (n *Note) RemoveLabel(label string) bool {
	i := slices.Index(n.Labels, label)
	if i < 0 {
		return false
	}
	n.Labels = slices.Delete(n.Labels, i, i+1)
	return true
}

// Matches implements the board filter: case-insensitive search over title
// and content, and an exact label match when label is set.
func (n *Note) Matches(search, label string) bool {
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		if !strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Content), search) {
			return false
		}
	}
	return label == "" || slices.Contains(n.Labels, label)
}

func (n Note) Clone() Note {
	n.Labels = slices.Clone(n.Labels)
	if n.Labels == nil {
		n.Labels = []string{}
	}
	return n
}
