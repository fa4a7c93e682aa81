package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedArena(t *testing.T) {
	a := New(0)

	for i := 0; i < 1000; i++ {
		require.NoError(t, a.Reserve())
	}
	s, err := a.InternString("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestBudgetExhaustion(t *testing.T) {
	// Room for exactly two entities.
	a := New(entityCost * 2)

	require.NoError(t, a.Reserve())
	require.NoError(t, a.Reserve())

	err := a.Reserve()
	require.ErrorIs(t, err, ErrExhausted)

	// A failed allocation must not consume budget.
	used, budget, entities, _ := a.Stats()
	assert.Equal(t, budget, used)
	assert.Equal(t, uint64(2), entities)
}

func TestInternStringCharges(t *testing.T) {
	a := New(8)

	// 5 bytes + terminator fits.
	s, err := a.InternString("abcde")
	require.NoError(t, err)
	assert.Equal(t, "abcde", s)

	// Budget has 2 bytes left; a 4-byte string must fail.
	_, err = a.InternString("wxyz")
	require.ErrorIs(t, err, ErrExhausted)
}

func TestInternStringEmpty(t *testing.T) {
	a := New(16)
	s, err := a.InternString("")
	require.NoError(t, err)
	assert.Equal(t, "", s)
}
