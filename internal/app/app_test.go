package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/app"
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/illBeRoy/advent-2022/internal/core/ports/mocks"
	"github.com/illBeRoy/advent-2022/internal/days"
	"github.com/illBeRoy/advent-2022/internal/engine/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const day2Sample = "A Y\nB X\nC Z"

type fixture struct {
	loader *mocks.MockConfigLoader
	inputs *mocks.MockInputSource
	hasher *mocks.MockHasher
	store  *mocks.MockAnswerStore
	logger *mocks.MockLogger
	out    *bytes.Buffer
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		inputs: mocks.NewMockInputSource(ctrl),
		hasher: mocks.NewMockHasher(ctrl),
		store:  mocks.NewMockAnswerStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		out:    &bytes.Buffer{},
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(f.loader, days.New(), f.inputs, f.hasher, f.store, f.logger, runner.New()).
		WithOutput(f.out)
	return f
}

func uncachedConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.CacheEnabled = false
	return cfg
}

func TestRun_SolvesSelectedTask(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 1})
	require.NoError(t, err)
	assert.Equal(t, "Day 2\nRock Paper Scissors\n\nTask: 1\nResult: 15\n", f.out.String())
}

func TestRun_SecondTaskReinterpretsTheGuide(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 2})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Result: 12\n")
}

func TestRun_DescribePrintsButNeverAltersTheResult(t *testing.T) {
	plain := newFixture(t)
	plain.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	plain.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)
	require.NoError(t, plain.app.Run(context.Background(), app.Options{Day: 2, Task: 1}))

	described := newFixture(t)
	described.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	described.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)
	require.NoError(t, described.app.Run(context.Background(), app.Options{Day: 2, Task: 1, Describe: true}))

	assert.Contains(t, described.out.String(), "second column")
	assert.NotContains(t, plain.out.String(), "second column")

	resultLine := func(out string) string {
		lines := strings.Split(strings.TrimSpace(out), "\n")
		return lines[len(lines)-1]
	}
	assert.Equal(t, resultLine(plain.out.String()), resultLine(described.out.String()))
}

func TestRun_RejectsOutOfRangeSelectors(t *testing.T) {
	cases := []struct {
		name     string
		opts     app.Options
		sentinel error
	}{
		{"day below range", app.Options{Day: 1, Task: 1}, domain.ErrInvalidDay},
		{"day above range", app.Options{Day: 31, Task: 1}, domain.ErrInvalidDay},
		{"task zero", app.Options{Day: 2, Task: 0}, domain.ErrInvalidTask},
		{"task three", app.Options{Day: 2, Task: 3}, domain.ErrInvalidTask},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.app.Run(context.Background(), tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.sentinel))
			assert.Empty(t, f.out.String())
		})
	}
}

func TestRun_RejectsUnregisteredDays(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), app.Options{Day: 30, Task: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDay))
}

func TestRun_CacheHitSkipsTheSolver(t *testing.T) {
	f := newFixture(t)

	key := domain.AnswerKey(domain.Selector{Day: 2, Task: 1}, "digest")

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)
	f.hasher.EXPECT().HashInput(day2Sample).Return("digest")
	// A cached answer that differs from what the solver would compute proves
	// the solver never ran.
	f.store.EXPECT().Get(key).Return(&domain.Answer{
		Key:    key,
		Day:    2,
		Task:   1,
		Result: domain.NumberResult(999),
	}, nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 1})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Result: 999\n")
}

func TestRun_CacheMissComputesAndStores(t *testing.T) {
	f := newFixture(t)

	key := domain.AnswerKey(domain.Selector{Day: 2, Task: 1}, "digest")

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)
	f.hasher.EXPECT().HashInput(day2Sample).Return("digest")
	f.store.EXPECT().Get(key).Return(nil, nil)
	f.store.EXPECT().Put(domain.Answer{
		Key:       key,
		Day:       2,
		Task:      1,
		InputHash: "digest",
		Result:    domain.NumberResult(15),
	}).Return(nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 1})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Result: 15\n")
}

func TestRun_CacheReadFailureFallsBackToTheSolver(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)
	f.hasher.EXPECT().HashInput(day2Sample).Return("digest")
	f.store.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache file is corrupt"))
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 1})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Result: 15\n")
}

func TestRun_NoCacheBypassesTheStoreEntirely(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, 2).Return(day2Sample, nil)

	err := f.app.Run(context.Background(), app.Options{Day: 2, Task: 1, NoCache: true})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Result: 15\n")
}

func TestRunAll_ReportsFailuresWithoutAborting(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, gomock.Any()).
		DoAndReturn(func(_ string, day int) (string, error) {
			if day == 2 {
				return day2Sample, nil
			}
			return "", errors.New("input file is missing")
		}).AnyTimes()

	err := f.app.RunAll(context.Background(), app.Options{})
	require.Error(t, err)

	out := f.out.String()
	assert.Contains(t, out, "day 2 task 1: 15\n")
	assert.Contains(t, out, "day 2 task 2: 12\n")
	assert.Contains(t, out, "day 3 task 1: failed\n")
	assert.Contains(t, out, "day 16 task 2: failed\n")
}

func TestRunAll_PrintsOutcomesInSelectorOrder(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f.loader.EXPECT().Load(".").Return(uncachedConfig(), nil)
	f.inputs.EXPECT().InputFor(domain.DefaultInputsDir, gomock.Any()).
		DoAndReturn(func(_ string, day int) (string, error) {
			if day == 2 {
				return day2Sample, nil
			}
			return "2-4,6-8", nil
		}).AnyTimes()

	_ = f.app.RunAll(context.Background(), app.Options{})

	var prefixes []string
	for _, line := range strings.Split(strings.TrimSpace(f.out.String()), "\n") {
		if strings.HasPrefix(line, "day ") {
			prefixes = append(prefixes, strings.SplitAfter(line, ":")[0])
		}
	}

	require.Len(t, prefixes, 30)
	assert.Equal(t, "day 2 task 1:", prefixes[0])
	assert.Equal(t, "day 2 task 2:", prefixes[1])
	assert.Equal(t, "day 16 task 2:", prefixes[29])
}

func TestList_PrintsEveryRegisteredDay(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.List())

	out := f.out.String()
	assert.Contains(t, out, "day 2: Rock Paper Scissors\n")
	assert.Contains(t, out, "day 16: Proboscidea Volcanium\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 15)
}
