package vectordb

import "encoding/json"

// FilterCondition is implemented by every condition type. Store adapters
// switch on the concrete type to render their native filter syntax.
type FilterCondition interface {
	IsFilterCondition()
}

// FilterSet combines Must (AND), Should (OR) and MustNot (NOT) clauses.
// Empty clauses are ignored.
//
// Example:
//
//	filters := &FilterSet{
//	    Must: &ConditionSet{
//	        Conditions: []FilterCondition{
//	            &MatchCondition{Field: "author", Value: "Li Bai"},
//	        },
//	    },
//	}
type FilterSet struct {
	Must    *ConditionSet `json:"must,omitempty"`
	Should  *ConditionSet `json:"should,omitempty"`
	MustNot *ConditionSet `json:"mustNot,omitempty"`
}

// ConditionSet holds the conditions of a single clause.
type ConditionSet struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

// IsEmpty reports whether fs has no conditions in any clause.
func (fs *FilterSet) IsEmpty() bool {
	if fs == nil {
		return true
	}
	return fs.Must.len() == 0 && fs.Should.len() == 0 && fs.MustNot.len() == 0
}

func (cs *ConditionSet) len() int {
	if cs == nil {
		return 0
	}
	return len(cs.Conditions)
}

// ── Match Conditions ─────────────────────────────────────────────────────────

// MatchCondition is an exact match (field = value).
// Value may be a string, bool, int, int64 or float64.
type MatchCondition struct {
	Field string `json:"field"`
	Value any    `json:"equalTo"`
}

func (c *MatchCondition) IsFilterCondition() {}

// MatchAnyCondition matches when the field equals one of Values (IN).
type MatchAnyCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"anyOf"`
}

func (c *MatchAnyCondition) IsFilterCondition() {}

// MatchExceptCondition matches when the field equals none of Values (NOT IN).
type MatchExceptCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"noneOf"`
}

func (c *MatchExceptCondition) IsFilterCondition() {}

// LikeCondition is a SQL style pattern match; % matches any run of characters.
type LikeCondition struct {
	Field   string `json:"field"`
	Pattern string `json:"like"`
}

func (c *LikeCondition) IsFilterCondition() {}

// ── Range Conditions ─────────────────────────────────────────────────────────

// NumericRange defines bounds for numeric filtering. Nil bounds are open.
type NumericRange struct {
	Gt  *float64 `json:"greaterThan,omitempty"`
	Gte *float64 `json:"greaterThanOrEqualTo,omitempty"`
	Lt  *float64 `json:"lessThan,omitempty"`
	Lte *float64 `json:"lessThanOrEqualTo,omitempty"`
}

// NumericRangeCondition filters by numeric range.
type NumericRangeCondition struct {
	Field string       `json:"field"`
	Range NumericRange `json:"-"`
}

func (c *NumericRangeCondition) IsFilterCondition() {}

type numericRangeJSON struct {
	Field                string   `json:"field"`
	GreaterThan          *float64 `json:"greaterThan,omitempty"`
	GreaterThanOrEqualTo *float64 `json:"greaterThanOrEqualTo,omitempty"`
	LessThan             *float64 `json:"lessThan,omitempty"`
	LessThanOrEqualTo    *float64 `json:"lessThanOrEqualTo,omitempty"`
}

// MarshalJSON flattens the range bounds next to the field name.
func (c *NumericRangeCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(numericRangeJSON{
		Field:                c.Field,
		GreaterThan:          c.Range.Gt,
		GreaterThanOrEqualTo: c.Range.Gte,
		LessThan:             c.Range.Lt,
		LessThanOrEqualTo:    c.Range.Lte,
	})
}

func (c *NumericRangeCondition) UnmarshalJSON(data []byte) error {
	var alias numericRangeJSON
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	c.Field = alias.Field
	c.Range = NumericRange{
		Gt:  alias.GreaterThan,
		Gte: alias.GreaterThanOrEqualTo,
		Lt:  alias.LessThan,
		Lte: alias.LessThanOrEqualTo,
	}
	return nil
}

// ── Null Conditions ──────────────────────────────────────────────────────────

// IsNullCondition matches documents where the field is unset.
type IsNullCondition struct {
	Field string `json:"field"`
	// IsNull is always true on the wire; it lets JSON decoding detect the type.
	IsNull bool `json:"isNull"`
}

func (c *IsNullCondition) IsFilterCondition() {}
