package runner_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/illBeRoy/advent-2022/internal/engine/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestRunPreservesSelectorOrder(t *testing.T) {
	var selectors []domain.Selector
	for day := 2; day <= 6; day++ {
		for task := 1; task <= 2; task++ {
			selectors = append(selectors, domain.Selector{Day: day, Task: task})
		}
	}

	outcomes := runner.New().Run(context.Background(), selectors,
		func(_ context.Context, sel domain.Selector) (domain.Result, error) {
			return domain.NumberResult(int64(sel.Day*10 + sel.Task)), nil
		})

	require.Len(t, outcomes, len(selectors))
	for i, outcome := range outcomes {
		assert.Equal(t, selectors[i], outcome.Selector)
		require.NoError(t, outcome.Err)
		assert.Equal(t, int64(selectors[i].Day*10+selectors[i].Task), outcome.Result.Number)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	broken := zerr.New("input file is missing")
	selectors := []domain.Selector{
		{Day: 2, Task: 1},
		{Day: 3, Task: 1},
		{Day: 4, Task: 1},
	}

	outcomes := runner.New().Run(context.Background(), selectors,
		func(_ context.Context, sel domain.Selector) (domain.Result, error) {
			if sel.Day == 3 {
				return domain.Result{}, broken
			}
			return domain.NumberResult(1), nil
		})

	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, broken)
	assert.NoError(t, outcomes[2].Err)
}

func TestRunSolvesEverySelectorExactlyOnce(t *testing.T) {
	var selectors []domain.Selector
	for day := 2; day <= 16; day++ {
		selectors = append(selectors, domain.Selector{Day: day, Task: 1})
	}

	var mu sync.Mutex
	seen := map[string]int{}

	runner.New().Run(context.Background(), selectors,
		func(_ context.Context, sel domain.Selector) (domain.Result, error) {
			mu.Lock()
			seen[fmt.Sprintf("%d/%d", sel.Day, sel.Task)]++
			mu.Unlock()
			return domain.NumberResult(0), nil
		})

	require.Len(t, seen, len(selectors))
	for sel, count := range seen {
		assert.Equal(t, 1, count, sel)
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := runner.New().Run(ctx, []domain.Selector{{Day: 2, Task: 1}},
		func(_ context.Context, _ domain.Selector) (domain.Result, error) {
			t.Fatal("solve must not run after cancellation")
			return domain.Result{}, nil
		})

	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, context.Canceled)
}
