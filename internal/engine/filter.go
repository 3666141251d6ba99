// Package engine implements the collection view model shared by every screen:
// a selector-driven filter, an aggregator over currency fields and a
// threshold classifier. All functions are pure over the slices they receive.
package engine

import (
	"strings"

	"celebrate/internal/core"
	"celebrate/internal/log"
)

// All is the selector value meaning "no restriction".
const All = "all"

// Predicate decides whether a record passes a named filter.
type Predicate[T any] func(T) bool

// Selector is the caller-owned query state of one screen.
type Selector struct {
	Category string
	Query    string
	Filter   string
}

// FilterCount is the number of records a named filter chip would show.
type FilterCount struct {
	ID    string
	Count int
}

// Schema configures the engine for one record type.
type Schema[T any] struct {
	// ID identifies a record in logs and errors.
	ID func(T) string
	// Category returns the record's category tag. Nil disables category filtering.
	Category func(T) string
	// Search lists the fields matched by the free-text query.
	Search []func(T) string
	// Filters maps a named filter id to its predicate.
	Filters map[string]Predicate[T]
	// FilterOrder is the chip order used by FilterCounts.
	FilterOrder []string
	// Categories is the known tag set. When empty every category id is
	// compared as given.
	Categories []string
	// CategoryAliases maps selector ids to tags ("restaurants" -> "Restaurant").
	CategoryAliases map[string]string
}

// Engine filters records of one type according to its schema.
type Engine[T any] struct {
	schema  Schema[T]
	known   map[string]string // lower(tag or alias) -> lower(tag)
	filters map[string]Predicate[T]
	logger  *log.Logger
}

// New builds an engine for the schema. A nil logger logs through slog.Default.
func New[T any](schema Schema[T], logger *log.Logger) *Engine[T] {
	e := &Engine[T]{
		schema:  schema,
		known:   make(map[string]string),
		filters: make(map[string]Predicate[T], len(schema.Filters)),
		logger:  log.OrDefault(logger, log.ComponentFilter),
	}
	for _, tag := range schema.Categories {
		t := strings.ToLower(strings.TrimSpace(tag))
		e.known[t] = t
	}
	for alias, tag := range schema.CategoryAliases {
		e.known[strings.ToLower(strings.TrimSpace(alias))] = strings.ToLower(strings.TrimSpace(tag))
	}
	for id, p := range schema.Filters {
		e.filters[strings.ToLower(id)] = p
	}
	return e
}

// Filter returns the records matching every predicate of sel, in their
// original order. The result is always a new slice.
func (e *Engine[T]) Filter(records []T, sel Selector) []T {
	m := e.compile(sel)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes sel.
func (e *Engine[T]) Matches(r T, sel Selector) bool {
	return e.compile(sel).match(r)
}

// FilterCounts returns the chip counts for "all" followed by every named
// filter in FilterOrder. Counts cover the whole list; the query and the
// category do not change them.
func (e *Engine[T]) FilterCounts(records []T) []FilterCount {
	ids := append([]string{All}, e.schema.FilterOrder...)
	out := make([]FilterCount, 0, len(ids))
	for _, id := range ids {
		m := e.compile(Selector{Filter: id})
		n := 0
		for _, r := range records {
			if m.match(r) {
				n++
			}
		}
		out = append(out, FilterCount{ID: id, Count: n})
	}
	return out
}

// CategoryCounts counts records per category tag in first-seen order.
func (e *Engine[T]) CategoryCounts(records []T) []core.CategoryCount {
	if e.schema.Category == nil {
		return nil
	}
	index := make(map[string]int)
	var out []core.CategoryCount
	for _, r := range records {
		tag := e.schema.Category(r)
		i, ok := index[tag]
		if !ok {
			i = len(out)
			index[tag] = i
			out = append(out, core.CategoryCount{Name: tag})
		}
		out[i].Count++
	}
	return out
}

// matcher is a selector resolved against the schema once per call.
type matcher[T any] struct {
	schema   *Schema[T]
	category string // lowercase tag, "" for no restriction
	filter   Predicate[T]
	query    string // lowercase, "" for no restriction
}

func (e *Engine[T]) compile(sel Selector) matcher[T] {
	m := matcher[T]{schema: &e.schema, query: strings.ToLower(sel.Query)}

	if c := strings.ToLower(strings.TrimSpace(sel.Category)); c != "" && c != All && e.schema.Category != nil {
		switch tag, ok := e.known[c]; {
		case ok:
			m.category = tag
		case len(e.known) == 0:
			m.category = c
		default:
			// Unknown ids do not restrict the result.
			e.logger.Warn("Unknown category in selector, ignoring",
				log.FieldOperation, log.OpFilter,
				log.FieldSelectorCategory, sel.Category)
		}
	}

	if f := strings.ToLower(strings.TrimSpace(sel.Filter)); f != "" && f != All {
		if p, ok := e.filters[f]; ok {
			m.filter = p
		} else {
			// Unknown ids do not restrict the result.
			e.logger.Warn("Unknown named filter in selector, ignoring",
				log.FieldOperation, log.OpFilter,
				log.FieldSelectorFilter, sel.Filter)
		}
	}
	return m
}

func (m matcher[T]) match(r T) bool {
	if m.category != "" && strings.ToLower(strings.TrimSpace(m.schema.Category(r))) != m.category {
		return false
	}
	if m.filter != nil && !m.filter(r) {
		return false
	}
	if m.query == "" {
		return true
	}
	for _, field := range m.schema.Search {
		if strings.Contains(strings.ToLower(field(r)), m.query) {
			return true
		}
	}
	return false
}
