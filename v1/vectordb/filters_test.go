package vectordb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSetJSONDetectsConditionTypes(t *testing.T) {
	gte := 700.0
	in := NewFilterSet(
		Must(
			NewMatch("dynasty", "Tang"),
			NewNumericRange("year", NumericRange{Gte: &gte}),
			NewLike("title", "Quiet%"),
		),
		Should(NewMatchAny("author", "Li Bai", "Du Fu")),
		MustNot(NewMatchExcept("lang", "zh"), NewIsNull("author")),
	)

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out FilterSet
	require.NoError(t, json.Unmarshal(data, &out))

	require.Len(t, out.Must.Conditions, 3)
	assert.IsType(t, &MatchCondition{}, out.Must.Conditions[0])
	assert.IsType(t, &NumericRangeCondition{}, out.Must.Conditions[1])
	assert.IsType(t, &LikeCondition{}, out.Must.Conditions[2])
	assert.Equal(t, 700.0, *out.Must.Conditions[1].(*NumericRangeCondition).Range.Gte)

	require.Len(t, out.Should.Conditions, 1)
	assert.IsType(t, &MatchAnyCondition{}, out.Should.Conditions[0])

	require.Len(t, out.MustNot.Conditions, 2)
	assert.IsType(t, &MatchExceptCondition{}, out.MustNot.Conditions[0])
	assert.Equal(t, "author", out.MustNot.Conditions[1].(*IsNullCondition).Field)
}

func TestUnknownCondition(t *testing.T) {
	var cs ConditionSet
	err := json.Unmarshal([]byte(`[{"field":"x","near":1}]`), &cs)
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	var nilSet *FilterSet
	assert.True(t, nilSet.IsEmpty())
	assert.True(t, NewFilterSet().IsEmpty())
	assert.True(t, NewFilterSet(Must()).IsEmpty())
	assert.False(t, NewFilterSet(Must(NewMatch("a", 1))).IsEmpty())
}

func TestMixedTypesPanic(t *testing.T) {
	assert.Panics(t, func() { NewMatchAny("f", "a", 1) })
	assert.NotPanics(t, func() { NewMatchAny("f", 1, int64(2), 3.5) })
}
