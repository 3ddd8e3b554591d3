package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw     string
		kind    TokenKind
		prefix  string
		pattern string
	}{
		{raw: "MA0161", kind: Concrete, prefix: "MA"},
		{raw: "MA161", kind: Concrete, prefix: "MA"},
		{raw: "MA0000", kind: Concrete, prefix: "MA"},
		{raw: "MAANY", kind: AnyInPrefix, prefix: "MA"},
		{raw: "MACHEM", kind: PatternInPrefix, prefix: "MA", pattern: "CHEM"},
		{raw: "MA01A", kind: PatternInPrefix, prefix: "MA", pattern: "01A"},
		{raw: " CS0101 ", kind: Concrete, prefix: "CS"},
		{raw: "CS", kind: Concrete, prefix: "CS"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok := ParseToken(tt.raw)
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.prefix, tok.Prefix)
			assert.Equal(t, tt.pattern, tok.Pattern)
		})
	}
}

func TestTokenMatches(t *testing.T) {
	chem := CourseRef{ID: "MA0410", Code: "Chem 101"}
	phys := CourseRef{ID: "MA0500", Code: "PHYS 200"}
	other := CourseRef{ID: "CS0410", Code: "CHEM 101"}

	pattern := ParseToken("MACHEM")
	assert.True(t, pattern.Matches(chem), "code match is case-insensitive")
	assert.False(t, pattern.Matches(phys))
	assert.False(t, pattern.Matches(other), "prefix must match")

	anyMA := ParseToken("MAANY")
	assert.True(t, anyMA.Matches(chem))
	assert.True(t, anyMA.Matches(phys))
	assert.False(t, anyMA.Matches(other))

	concrete := ParseToken("MA0410")
	assert.True(t, concrete.Matches(chem))
	assert.False(t, concrete.Matches(phys))
}

func TestResolve(t *testing.T) {
	store := newFakeStore().
		course("MA0410", "CHEM 101").
		course("MA0411", "CHEM 102").
		course("MA0500", "PHYS 200")
	ctx := context.Background()

	got, err := Resolve(ctx, store, ParseToken("MACHEM"))
	require.NoError(t, err)
	assert.Equal(t, []string{"MA0410", "MA0411"}, got)

	got, err = Resolve(ctx, store, ParseToken("MA0500"))
	require.NoError(t, err)
	assert.Equal(t, []string{"MA0500"}, got)

	got, err = Resolve(ctx, store, ParseToken("MAANY"))
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 1, store.callCount("match"), "only pattern tokens hit the catalog")
}
