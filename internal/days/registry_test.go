package days

import (
	"errors"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesEveryRegisteredDay(t *testing.T) {
	registry := New()

	for day := 2; day <= 16; day++ {
		solver, err := registry.Solver(day)
		require.NoError(t, err, "day %d", day)
		require.NotNil(t, solver, "day %d", day)
		assert.NotEmpty(t, solver.Title(), "day %d", day)
		assert.NotEmpty(t, solver.Description(), "day %d", day)
	}
}

func TestRegistryRejectsUnknownDays(t *testing.T) {
	registry := New()

	for _, day := range []int{17, 25, 30} {
		_, err := registry.Solver(day)
		require.Error(t, err, "day %d", day)
		assert.True(t, errors.Is(err, domain.ErrUnknownDay), "day %d", day)
	}
}

func TestRegistryListsDaysInOrder(t *testing.T) {
	registry := New()

	days := registry.Days()
	require.Len(t, days, 15)
	for i := range days {
		assert.Equal(t, i+2, days[i])
	}
}
