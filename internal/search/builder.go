// Package search compiles a declarative per-entity filter schema into a
// single GORM query. The four listing catalogs share this builder instead of
// carrying parallel hand-written ones.
package search

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Kind is the constraint class a filter parameter applies.
type Kind int

const (
	// Substring matches case-insensitively inside one text column.
	Substring Kind = iota
	// Exact matches an enumerated categorical column; the "all"/"any"
	// sentinels skip the constraint.
	Exact
	// Min applies column >= value for numeric parameters.
	Min
	// Max applies column <= value.
	Max
	// Flag applies column = true, and only when the filter explicitly
	// requests true.
	Flag
)

type Field struct {
	Param  string
	Column string
	Kind   Kind
}

// Schema describes how one entity's table is filtered and sorted.
type Schema struct {
	// TextColumns are OR-combined targets for the free-text search term.
	TextColumns []string
	Fields      []Field
	// SortFields is the allow-list mapping sort params to columns.
	SortFields map[string]string
	// DefaultSort is used when the requested sort is absent or unknown.
	DefaultSort string
}

// Params carries one request's filter state. Get looks up a raw query
// parameter by name; absent parameters return "".
type Params struct {
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
	Get    func(name string) string
}

func (p Params) value(name string) string {
	if p.Get == nil {
		return ""
	}
	return strings.TrimSpace(p.Get(name))
}

// isSentinel reports whether v signals "do not constrain on this field".
func isSentinel(v string) bool {
	switch strings.ToLower(v) {
	case "", "all", "any":
		return true
	}
	return false
}

// Apply adds every present constraint to the query as a logical AND.
// The existence gate (is_active and friends) is the caller's scope; Apply
// only handles the request-driven filters.
func (s *Schema) Apply(q *gorm.DB, p Params) *gorm.DB {
	if p.Search != "" && len(s.TextColumns) > 0 {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		conds := make([]string, len(s.TextColumns))
		args := make([]interface{}, len(s.TextColumns))
		for i, col := range s.TextColumns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	for _, f := range s.Fields {
		v := p.value(f.Param)
		switch f.Kind {
		case Substring:
			if v == "" {
				continue
			}
			q = q.Where("LOWER("+f.Column+") LIKE ?", "%"+strings.ToLower(v)+"%")
		case Exact:
			if isSentinel(v) {
				continue
			}
			q = q.Where(f.Column+" = ?", v)
		case Min:
			n, err := strconv.ParseFloat(v, 64)
			if v == "" || err != nil {
				continue
			}
			q = q.Where(f.Column+" >= ?", n)
		case Max:
			n, err := strconv.ParseFloat(v, 64)
			if v == "" || err != nil {
				continue
			}
			q = q.Where(f.Column+" <= ?", n)
		case Flag:
			if v == "true" {
				q = q.Where(f.Column + " = true")
			}
		}
	}

	return q
}

// OrderClause validates the sort field against the allow-list, silently
// falling back to the default (created_at, descending) on anything unknown.
func (s *Schema) OrderClause(sort, order string) string {
	col, ok := s.SortFields[sort]
	if !ok {
		col = s.DefaultSort
		if col == "" {
			col = "created_at"
		}
		return col + " DESC"
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
