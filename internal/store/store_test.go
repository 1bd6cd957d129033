package store

import (
	"errors"
	"testing"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCycle(t *testing.T, loan float64, years int) domain.Cycle {
	t.Helper()
	cycle, err := domain.NewCycle(decimal.NewFromFloat(loan), decimal.NewFromFloat(0.05), years, decimal.Zero, 0)
	require.NoError(t, err)
	return cycle
}

func TestScenarioStore_AddAndList(t *testing.T) {
	s := NewScenarioStore()

	e1 := s.Add("lump", testCycle(t, 10000, 10))
	e2 := s.Add("lump", testCycle(t, 20000, 5))
	assert.NotEqual(t, e1.ID, e2.ID)

	entries := s.List("lump")
	require.Len(t, entries, 2)
	assert.Equal(t, e1.ID, entries[0].ID)
	assert.Equal(t, e2.ID, entries[1].ID)

	assert.Empty(t, s.List("other"))
}

func TestScenarioStore_Get(t *testing.T) {
	s := NewScenarioStore()
	entry := s.Add("lump", testCycle(t, 10000, 10))

	got, err := s.Get("lump", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	_, err = s.Get("lump", "no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScenarioStore_Update(t *testing.T) {
	s := NewScenarioStore()
	entry := s.Add("lump", testCycle(t, 10000, 10))
	oldRepayment := entry.Cycle.MonthlyRepayment()

	replacement := testCycle(t, 50000, 10)
	require.NoError(t, s.Update("lump", entry.ID, replacement))

	entries := s.List("lump")
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Cycle.MonthlyRepayment().Equal(oldRepayment))
	assert.True(t, entries[0].Cycle.MonthlyRepayment().Equal(replacement.MonthlyRepayment()))

	err := s.Update("lump", "no-such-id", replacement)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScenarioStore_Remove(t *testing.T) {
	s := NewScenarioStore()
	e1 := s.Add("lump", testCycle(t, 10000, 10))
	e2 := s.Add("lump", testCycle(t, 20000, 5))
	e3 := s.Add("lump", testCycle(t, 30000, 15))

	require.NoError(t, s.Remove("lump", e2.ID))

	entries := s.List("lump")
	require.Len(t, entries, 2)
	assert.Equal(t, e1.ID, entries[0].ID)
	assert.Equal(t, e3.ID, entries[1].ID)

	err := s.Remove("lump", e2.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScenarioStore_Strategy(t *testing.T) {
	s := NewScenarioStore()
	s.Add("lump", testCycle(t, 10000, 10))
	s.Add("lump", testCycle(t, 20000, 5))

	strategy := s.Strategy("lump")
	require.Len(t, strategy, 2)
	assert.Equal(t, 15, strategy.TotalYears())

	assert.Empty(t, s.Strategy("other"))
}

func TestScenarioStore_Clear(t *testing.T) {
	s := NewScenarioStore()
	s.Add("lump", testCycle(t, 10000, 10))
	s.Clear("lump")
	assert.Empty(t, s.List("lump"))

	// Clearing an unknown scenario is a no-op.
	s.Clear("other")
}

func TestScenarioStore_ListReturnsCopy(t *testing.T) {
	s := NewScenarioStore()
	s.Add("lump", testCycle(t, 10000, 10))

	entries := s.List("lump")
	entries[0].ID = "mutated"

	assert.NotEqual(t, "mutated", s.List("lump")[0].ID)
}
