package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(raw ...string) []Token {
	out := make([]Token, 0, len(raw))
	for _, r := range raw {
		out = append(out, ParseToken(r))
	}
	return out
}

func TestResolveAvailability_AnyShortCircuits(t *testing.T) {
	store := newFakeStore().course("MA0100", "MATH 100", "Fall")

	got, err := ResolveAvailability(context.Background(), store, tokens("MACHEM", "MAANY", "MA0100"))
	require.NoError(t, err)
	assert.Equal(t, "Fall,Winter,Spring,Summer", got)
	assert.Zero(t, store.callCount("match"))
	assert.Zero(t, store.callCount("terms"))
}

func TestResolveAvailability_Union(t *testing.T) {
	store := newFakeStore().
		course("MA0100", "MATH 100", "Spring").
		course("MA0410", "CHEM 101", "fall").
		course("MA0411", "CHEM 102", "Summer", "Fall")

	got, err := ResolveAvailability(context.Background(), store, tokens("MA0100", "MACHEM"))
	require.NoError(t, err)
	assert.Equal(t, "Fall,Spring,Summer", got)
}

func TestResolveAvailability_UnknownCourse(t *testing.T) {
	store := newFakeStore()

	got, err := ResolveAvailability(context.Background(), store, tokens("MA0999"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveAvailability_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("boom")

	_, err := ResolveAvailability(context.Background(), store, tokens("MA0100"))
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestFormatAvailability(t *testing.T) {
	assert.Equal(t, "Fall,Winter", FormatAvailability([]string{"winter", " FALL ", "Autumn", "fall"}))
	assert.Empty(t, FormatAvailability(nil))
}

func TestParseAvailability(t *testing.T) {
	assert.Equal(t, []string{"fall", "spring"}, ParseAvailability(" Fall, ,Spring"))
	assert.Empty(t, ParseAvailability(""))
}
