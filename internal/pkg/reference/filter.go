package reference

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
)

// Operator compares an item property against a filter value
type Operator string

// Filter operators. OpExists has no value.
const (
	OpExists Operator = ""
	OpEq     Operator = "="
	OpNe     Operator = "!="
	OpGt     Operator = ">"
	OpGe     Operator = ">="
	OpLt     Operator = "<"
	OpLe     Operator = "<="
)

// operators are probed in this order so two character operators win
var operators = []Operator{OpGe, OpLe, OpNe, OpEq, OpGt, OpLt}

// Filter is one clause of a [...] filter block
type Filter struct {
	Property string
	Operator Operator
	Value    string
}

// ParseFilters splits raw on & or , into clauses. Empty clauses are dropped.
func ParseFilters(raw string) []Filter {
	clauses := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '&' || r == ','
	})

	filters := make([]Filter, 0, len(clauses))
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		filters = append(filters, parseClause(clause))
	}
	return filters
}

func parseClause(clause string) Filter {
	for _, op := range operators {
		if i := strings.Index(clause, string(op)); i >= 0 {
			return Filter{
				Property: strings.TrimSpace(clause[:i]),
				Operator: op,
				Value:    strings.TrimSpace(clause[i+len(op):]),
			}
		}
	}
	return Filter{Property: clause, Operator: OpExists}
}

// Matches evaluates the filter against an item node
func (f Filter) Matches(item *catalog.Node) bool {
	actual := item.Lookup(f.Property)

	if f.Operator == OpExists {
		return !actual.IsNull()
	}

	if f.Operator == OpEq && strings.EqualFold(f.Value, "true") {
		if actual.IsNull() {
			return false
		}
		if b, ok := actual.AsBool(); ok {
			return b
		}
		return true
	}

	if actual == nil {
		return false
	}

	if actualNum, ok := actual.AsFloat(); ok {
		expected, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return false
		}
		switch f.Operator {
		case OpEq:
			return actualNum == expected
		case OpNe:
			return actualNum != expected
		case OpGt:
			return actualNum > expected
		case OpGe:
			return actualNum >= expected
		case OpLt:
			return actualNum < expected
		case OpLe:
			return actualNum <= expected
		}
		return false
	}

	switch f.Operator {
	case OpEq:
		if strings.EqualFold(f.Value, "false") {
			b, ok := actual.AsBool()
			return ok && !b
		}
		return actual.Text() == f.Value
	case OpNe:
		return actual.Text() != f.Value
	default:
		// ordering needs a number on both sides
		return false
	}
}

// MatchesAll reports whether item satisfies every filter
func MatchesAll(filters []Filter, item *catalog.Node) bool {
	for _, f := range filters {
		if !f.Matches(item) {
			return false
		}
	}
	return true
}
