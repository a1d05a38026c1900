// Package filter derives the visible subset of a user's tasks for a named
// filter, together with its display label. Filters are pure predicates
// evaluated over the owner's full task list.
package filter

import (
	"time"

	"tasklist/internal/model"
)

// Kind enumerates the reserved filter names. Anything outside the
// reserved set falls back to a project-name match.
type Kind int

const (
	All Kind = iota
	Important
	Private
	Shared
	Today
	Week
	Project
)

var kinds = map[string]Kind{
	"":          All,
	"important": Important,
	"private":   Private,
	"shared":    Shared,
	"today":     Today,
	"week":      Week,
}

// Lookup resolves a filter name to its kind.
func Lookup(name string) Kind {
	if kind, ok := kinds[name]; ok {
		return kind
	}
	return Project
}

// Apply evaluates the named filter against the tasks at the given
// reference time. The input slice is never modified.
func Apply(name string, tasks []model.Task, now time.Time) ([]model.Task, string) {
	kind := Lookup(name)
	match := predicate(kind, name, now)

	visible := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if match(task) {
			visible = append(visible, task)
		}
	}
	return visible, Label(kind, name)
}

func predicate(kind Kind, name string, now time.Time) func(model.Task) bool {
	switch kind {
	case Important:
		return func(t model.Task) bool { return t.Important }
	case Private:
		return func(t model.Task) bool { return t.Private }
	case Shared:
		return func(t model.Task) bool { return !t.Private }
	case Today:
		return func(t model.Task) bool {
			return t.Deadline != nil && sameDay(t.Deadline.UTC(), now.UTC())
		}
	case Week:
		// Open interval on both ends: a deadline exactly one or seven
		// days out is excluded.
		lower := now.Add(24 * time.Hour)
		upper := now.Add(7 * 24 * time.Hour)
		return func(t model.Task) bool {
			return t.Deadline != nil && t.Deadline.After(lower) && t.Deadline.Before(upper)
		}
	case Project:
		return func(t model.Task) bool { return t.Project == name }
	default:
		return func(model.Task) bool { return true }
	}
}

// Label returns the display title for a filter.
func Label(kind Kind, name string) string {
	switch kind {
	case Important:
		return "Important"
	case Private:
		return "Private"
	case Shared:
		return "Shared"
	case Today:
		return "Today"
	case Week:
		return "Next 7 Days"
	case Project:
		return name + " - All"
	default:
		return "All"
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
