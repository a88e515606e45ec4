package dashvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashsearch/dashsearch-go/v1/vectordb"
)

func ptr(f float64) *float64 { return &f }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name string
		in   *vectordb.FilterSet
		want string
	}{
		{"nil", nil, ""},
		{"empty", vectordb.NewFilterSet(), ""},
		{
			"single match",
			vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("file", "demo.txt"))),
			"file = 'demo.txt'",
		},
		{
			"must conjunction",
			vectordb.NewFilterSet(vectordb.Must(
				vectordb.NewMatch("author", "Li Bai"),
				vectordb.NewMatch("year", 726),
				vectordb.NewMatch("classic", true),
			)),
			"author = 'Li Bai' and year = 726 and classic = true",
		},
		{
			"should group",
			vectordb.NewFilterSet(vectordb.Should(
				vectordb.NewMatch("author", "Li Bai"),
				vectordb.NewMatch("author", "Du Fu"),
			)),
			"(author = 'Li Bai' or author = 'Du Fu')",
		},
		{
			"must not",
			vectordb.NewFilterSet(vectordb.MustNot(vectordb.NewIsNull("author"))),
			"not (author is null)",
		},
		{
			"any and except",
			vectordb.NewFilterSet(vectordb.Must(
				vectordb.NewMatchAny("tag", "a", "b"),
				vectordb.NewMatchExcept("lang", "en", "fr"),
			)),
			"(tag = 'a' or tag = 'b') and (lang != 'en' and lang != 'fr')",
		},
		{
			"range and like",
			vectordb.NewFilterSet(vectordb.Must(
				vectordb.NewNumericRange("year", vectordb.NumericRange{Gte: ptr(700), Lt: ptr(800.5)}),
				vectordb.NewLike("title", "Quiet%"),
			)),
			"(year >= 700 and year < 800.5) and title like 'Quiet%'",
		},
		{
			"quotes escaped",
			vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("title", "Heaven's Gate"))),
			"title = 'Heaven''s Gate'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildFilter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilterRejects(t *testing.T) {
	bad := []*vectordb.FilterSet{
		vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("title; drop", "x"))),
		vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("title", []string{"x"}))),
		vectordb.NewFilterSet(vectordb.Must(vectordb.NewNumericRange("year", vectordb.NumericRange{}))),
		vectordb.NewFilterSet(vectordb.Must(&vectordb.MatchAnyCondition{Field: "tag"})),
		vectordb.NewFilterSet(vectordb.Must(nil)),
	}
	for _, fs := range bad {
		_, err := BuildFilter(fs)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}
