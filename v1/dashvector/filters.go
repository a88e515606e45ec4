package dashvector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dashsearch/dashsearch-go/v1/vectordb"
)

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// BuildFilter renders a vectordb.FilterSet as a DashVector SQL where clause.
//
//   - Must conditions are joined with "and"
//   - Should conditions become one parenthesised "or" group
//   - MustNot conditions become "not (... or ...)"
//
// String literals are single quoted with embedded quotes doubled. A nil or
// empty set renders as "".
//
// Example:
//
//	where, _ := dashvector.BuildFilter(vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("author", "Li Bai")),
//	))
//	// author = 'Li Bai'
func BuildFilter(fs *vectordb.FilterSet) (string, error) {
	if fs.IsEmpty() {
		return "", nil
	}

	var parts []string

	if fs.Must != nil {
		for _, c := range fs.Must.Conditions {
			s, err := renderCondition(c)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
	}

	if fs.Should != nil && len(fs.Should.Conditions) > 0 {
		s, err := renderGroup(fs.Should.Conditions, " or ")
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	if fs.MustNot != nil && len(fs.MustNot.Conditions) > 0 {
		s, err := renderGroup(fs.MustNot.Conditions, " or ")
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(s, "(") {
			s = "(" + s + ")"
		}
		parts = append(parts, "not "+s)
	}

	return strings.Join(parts, " and "), nil
}

func renderGroup(conds []vectordb.FilterCondition, sep string) (string, error) {
	rendered := make([]string, 0, len(conds))
	for _, c := range conds {
		s, err := renderCondition(c)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	if len(rendered) == 1 {
		return rendered[0], nil
	}
	return "(" + strings.Join(rendered, sep) + ")", nil
}

func renderCondition(c vectordb.FilterCondition) (string, error) {
	switch cond := c.(type) {
	case *vectordb.MatchCondition:
		return renderComparison(cond.Field, "=", cond.Value)

	case *vectordb.MatchAnyCondition:
		return renderValueList(cond.Field, "=", " or ", cond.Values)

	case *vectordb.MatchExceptCondition:
		return renderValueList(cond.Field, "!=", " and ", cond.Values)

	case *vectordb.LikeCondition:
		return renderComparison(cond.Field, "like", cond.Pattern)

	case *vectordb.IsNullCondition:
		if err := checkField(cond.Field); err != nil {
			return "", err
		}
		return cond.Field + " is null", nil

	case *vectordb.NumericRangeCondition:
		return renderRange(cond)

	case nil:
		return "", invalidf("nil filter condition")

	default:
		return "", invalidf("unsupported filter condition %T", c)
	}
}

func renderComparison(field, op string, value any) (string, error) {
	if err := checkField(field); err != nil {
		return "", err
	}
	lit, err := literal(value)
	if err != nil {
		return "", fmt.Errorf("field %s: %w", field, err)
	}
	return field + " " + op + " " + lit, nil
}

func renderValueList(field, op, sep string, values []any) (string, error) {
	if len(values) == 0 {
		return "", invalidf("field %s: empty value list", field)
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, err := renderComparison(field, op, v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func renderRange(c *vectordb.NumericRangeCondition) (string, error) {
	if err := checkField(c.Field); err != nil {
		return "", err
	}
	var parts []string
	add := func(op string, v *float64) {
		if v != nil {
			parts = append(parts, c.Field+" "+op+" "+strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	add(">", c.Range.Gt)
	add(">=", c.Range.Gte)
	add("<", c.Range.Lt)
	add("<=", c.Range.Lte)

	switch len(parts) {
	case 0:
		return "", invalidf("field %s: range without bounds", c.Field)
	case 1:
		return parts[0], nil
	default:
		return "(" + strings.Join(parts, " and ") + ")", nil
	}
}

func checkField(field string) error {
	if !fieldNamePattern.MatchString(field) {
		return invalidf("invalid field name %q", field)
	}
	return nil
}

// literal renders a Go value as a SQL literal.
func literal(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return QuoteString(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", invalidf("unsupported value type %T", v)
	}
}

// QuoteString returns s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
