// Package vectordb holds the store-agnostic filter model used to narrow
// vector searches.
//
// A FilterSet has three clauses: Must (AND), Should (OR) and MustNot (NOT).
// Each clause is a ConditionSet of typed conditions:
//
//   - MatchCondition         field = value
//   - MatchAnyCondition      field IN (...)
//   - MatchExceptCondition   field NOT IN (...)
//   - LikeCondition          field LIKE pattern
//   - NumericRangeCondition  bounds on a numeric field
//   - IsNullCondition        field is unset
//
// Store clients translate a FilterSet into their own syntax; the dashvector
// package renders it as a SQL where clause via dashvector.BuildFilter.
//
// # Usage
//
//	filters := vectordb.NewFilterSet(
//	    vectordb.Must(
//	        vectordb.NewMatch("dynasty", "Tang"),
//	        vectordb.NewNumericRange("year", vectordb.NumericRange{Gte: &from}),
//	    ),
//	    vectordb.MustNot(vectordb.NewIsNull("author")),
//	)
//
//	where, err := dashvector.BuildFilter(filters)
//
// # JSON
//
// FilterSet round-trips through JSON so it can be accepted in API payloads;
// the condition type is detected from its keys (equalTo, anyOf, noneOf, like,
// isNull, greaterThan...).
package vectordb
