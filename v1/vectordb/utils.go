package vectordb

import (
	"encoding/json"
	"fmt"
)

// ── FilterSet Constructors ───────────────────────────────────────────────────

// NewFilterSet creates a FilterSet from the given clauses.
//
// Example:
//
//	vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("dynasty", "Tang")),
//	    vectordb.Should(vectordb.NewMatch("author", "Li Bai"), vectordb.NewMatch("author", "Du Fu")),
//	)
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must sets the AND clause.
func Must(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.Must = &ConditionSet{Conditions: conditions}
	}
}

// Should sets the OR clause.
func Should(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.Should = &ConditionSet{Conditions: conditions}
	}
}

// MustNot sets the NOT clause.
func MustNot(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) {
		fs.MustNot = &ConditionSet{Conditions: conditions}
	}
}

// ── Condition Constructors ───────────────────────────────────────────────────

func NewMatch(field string, value any) *MatchCondition {
	return &MatchCondition{Field: field, Value: value}
}

// NewMatchAny panics if values mix strings, numbers and bools.
func NewMatchAny(field string, values ...any) *MatchAnyCondition {
	validateHomogeneousTypes(values)
	return &MatchAnyCondition{Field: field, Values: values}
}

// NewMatchExcept panics if values mix strings, numbers and bools.
func NewMatchExcept(field string, values ...any) *MatchExceptCondition {
	validateHomogeneousTypes(values)
	return &MatchExceptCondition{Field: field, Values: values}
}

func NewLike(field, pattern string) *LikeCondition {
	return &LikeCondition{Field: field, Pattern: pattern}
}

func NewNumericRange(field string, r NumericRange) *NumericRangeCondition {
	return &NumericRangeCondition{Field: field, Range: r}
}

func NewIsNull(field string) *IsNullCondition {
	return &IsNullCondition{Field: field, IsNull: true}
}

// ── JSON Serialization ───────────────────────────────────────────────────────

// MarshalJSON encodes the conditions as a plain array.
func (cs *ConditionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.Conditions)
}

// UnmarshalJSON picks the concrete condition type of each element from its keys.
func (cs *ConditionSet) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	cs.Conditions = make([]FilterCondition, 0, len(raw))
	for _, r := range raw {
		cond, err := parseCondition(r)
		if err != nil {
			return err
		}
		cs.Conditions = append(cs.Conditions, cond)
	}
	return nil
}

// parseCondition detects the condition type from its JSON keys:
//   - "equalTo" → MatchCondition
//   - "anyOf" → MatchAnyCondition
//   - "noneOf" → MatchExceptCondition
//   - "like" → LikeCondition
//   - "isNull" → IsNullCondition
//   - "greaterThan", "lessThan", etc. → NumericRangeCondition
func parseCondition(data []byte) (FilterCondition, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	var cond FilterCondition
	switch {
	case hasKey(fields, "equalTo"):
		cond = &MatchCondition{}
	case hasKey(fields, "anyOf"):
		cond = &MatchAnyCondition{}
	case hasKey(fields, "noneOf"):
		cond = &MatchExceptCondition{}
	case hasKey(fields, "like"):
		cond = &LikeCondition{}
	case hasKey(fields, "isNull"):
		cond = &IsNullCondition{}
	case hasKey(fields, "greaterThan"), hasKey(fields, "greaterThanOrEqualTo"),
		hasKey(fields, "lessThan"), hasKey(fields, "lessThanOrEqualTo"):
		cond = &NumericRangeCondition{}
	default:
		return nil, fmt.Errorf("unknown filter condition type: %s", string(data))
	}

	if err := json.Unmarshal(data, cond); err != nil {
		return nil, err
	}
	return cond, nil
}

func hasKey(m map[string]json.RawMessage, key string) bool {
	_, ok := m[key]
	return ok
}

// validateHomogeneousTypes panics when values mix type categories.
func validateHomogeneousTypes(values []any) {
	if len(values) <= 1 {
		return
	}

	expectedType := getType(values[0])
	if expectedType == "" {
		panic(fmt.Sprintf("vectordb: unsupported value type: %T", values[0]))
	}

	for i, v := range values[1:] {
		actualType := getType(v)
		if actualType == "" {
			panic(fmt.Sprintf("vectordb: unsupported value type at index %d: %T", i+1, v))
		}
		if actualType != expectedType {
			panic(fmt.Sprintf("vectordb: mixed types not allowed in MatchAny/MatchExcept: expected %s but got %s at index %d", expectedType, actualType, i+1))
		}
	}
}

func getType(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case int, int64, float64:
		return "numeric"
	case bool:
		return "boolean"
	}
	return ""
}
