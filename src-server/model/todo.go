package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TodoCategory string

const (
	TodoCategoryPersonal TodoCategory = "personal"
	TodoCategoryWork     TodoCategory = "work"
	TodoCategoryShopping TodoCategory = "shopping"
	TodoCategoryOther    TodoCategory = "other"
)

func (c TodoCategory) Valid() bool {
	switch c {
	case TodoCategoryPersonal, TodoCategoryWork, TodoCategoryShopping, TodoCategoryOther:
		return true
	}
	return false
}

func (c TodoCategory) DisplayName() string {
	return cases.Title(language.English).String(string(c))
}

type TodoPriority string

const (
	TodoPriorityLow    TodoPriority = "low"
	TodoPriorityMedium TodoPriority = "medium"
	TodoPriorityHigh   TodoPriority = "high"
)

func (p TodoPriority) Valid() bool {
	switch p {
	case TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh:
		return true
	}
	return false
}

// DisplayName renders the badge text, e.g. "High Priority".
func (p TodoPriority) DisplayName() string {
	return cases.Title(language.English).String(string(p) + " priority")
}

type TodoStatus string

const (
	TodoStatusAll       TodoStatus = "all"
	TodoStatusActive    TodoStatus = "active"
	TodoStatusCompleted TodoStatus = "completed"
)

type Todo struct {
	ID        string       `json:"id" yaml:"id"`
	Text      string       `json:"text" yaml:"text"`
	Completed bool         `json:"completed" yaml:"completed"`
	Category  TodoCategory `json:"category" yaml:"category"`
	Priority  TodoPriority `json:"priority" yaml:"priority"`
	CreatedAt string       `json:"createdAt" yaml:"created_at"`
}

// Normalize fills in the defaults the add form starts with.
func (t *Todo) Normalize() {
	t.Text = strings.TrimSpace(t.Text)
	if t.Category == "" {
		t.Category = TodoCategoryPersonal
	}
	if t.Priority == "" {
		t.Priority = TodoPriorityMedium
	}
}

func (t *Todo) Validate() error {
	switch {
	case strings.TrimSpace(t.Text) == "":
		return ErrEmptyText
	case !t.Category.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	case !t.Priority.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// TodoFilter is the status/category/priority selection of the list screen;
// empty fields and "all" match everything.
type TodoFilter struct {
	Status   TodoStatus   `json:"status"`
	Category TodoCategory `json:"category"`
	Priority TodoPriority `json:"priority"`
}

func (f TodoFilter) Match(t *Todo) bool {
	switch f.Status {
	case TodoStatusActive:
		if t.Completed {
			return false
		}
	case TodoStatusCompleted:
		if !t.Completed {
			return false
		}
	}
	if f.Category != "" && f.Category != "all" && f.Category != t.Category {
		return false
	}
	if f.Priority != "" && f.Priority != "all" && f.Priority != t.Priority {
		return false
	}
	return true
}
