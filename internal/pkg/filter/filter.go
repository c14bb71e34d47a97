// Package filter turns recognized query parameters into ANDed where conditions.
// Each entity declares a Spec once; the mapping from parameter to column and
// comparator is data, not per-route code, so it can be tested in isolation.
package filter

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Op selects how a parameter value is compared against its column
type Op int

const (
	// Eq matches the raw value
	Eq Op = iota
	// EqUpper upper-cases the value before an exact match (enum params)
	EqUpper
	// EqFold matches case-insensitively (slugs, free-text labels)
	EqFold
	// EqBool parses a boolean ("true", "false", "1", "0") and matches the
	// boolean column; the parameter is ignored when it does not parse
	EqBool
	// EqInt parses an integer and matches the numeric column; the parameter
	// is ignored when it does not parse
	EqInt
)

// Field maps one query parameter to one column condition
type Field struct {
	Param string
	// Column defaults to Param when empty
	Column string
	Op     Op
	// Default is applied when the parameter is absent (policy filters such as
	// isPublic=true for anonymous listings). An empty Default means no filter.
	Default string
	// Join is added before the condition for fields that reach across tables
	// (e.g. category slug lookups). Only applied when the field fires.
	Join string
}

// Spec is the declarative filter table for one entity's list endpoint.
// Unrecognized parameters are ignored by construction: only declared fields
// are ever consulted.
type Spec struct {
	Fields []Field
}

// Getter resolves a query parameter; fiber's Ctx.Query satisfies it
type Getter func(key string, defaultValue ...string) string

// Scope returns a gorm scope applying the spec's conditions for the given
// query parameters
func (s Spec) Scope(get Getter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return s.Apply(q, get)
	}
}

// Apply adds the spec's conditions for the given query parameters to q
func (s Spec) Apply(q *gorm.DB, get Getter) *gorm.DB {
	for _, f := range s.Fields {
		value := get(f.Param)
		if f.Op == EqBool && !parsesBool(value) {
			// An unparseable bool counts as absent so a garbage value can
			// never drop a default visibility filter
			value = ""
		}
		if value == "" {
			value = f.Default
		}
		if value == "" {
			continue
		}
		if f.Join != "" {
			q = q.Joins(f.Join)
		}
		q = f.condition(q, value)
	}
	return q
}

func parsesBool(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseBool(value)
	return err == nil
}

func (f Field) condition(q *gorm.DB, value string) *gorm.DB {
	col := f.Column
	if col == "" {
		col = f.Param
	}
	switch f.Op {
	case EqUpper:
		return q.Where(col+" = ?", strings.ToUpper(value))
	case EqFold:
		return q.Where("LOWER("+col+") = LOWER(?)", value)
	case EqBool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return q
		}
		return q.Where(col+" = ?", v)
	case EqInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return q
		}
		return q.Where(col+" = ?", n)
	default:
		return q.Where(col+" = ?", value)
	}
}
