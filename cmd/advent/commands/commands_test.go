package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/illBeRoy/advent-2022/cmd/advent/commands"
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

// newCLI wires a CLI around an app whose config loader and input source are
// mocked to serve the day 2 sample with the cache disabled.
func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	inputs := mocks.NewMockInputSource(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	store := mocks.NewMockAnswerStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	cfg := domain.DefaultConfig()
	cfg.CacheEnabled = false
	loader.EXPECT().Load(".").Return(cfg, nil).AnyTimes()
	inputs.EXPECT().InputFor(domain.DefaultInputsDir, gomock.Any()).
		DoAndReturn(func(_ string, day int) (string, error) {
			if day == 2 {
				return day2Sample, nil
			}
			return "", errors.New("input file is missing")
		}).AnyTimes()

	out := &bytes.Buffer{}
	a := app.New(loader, days.New(), inputs, hasher, store, logger, runner.New()).WithOutput(out)

	cli := commands.New(a)
	cli.SetOutput(io.Discard)
	return cli, out
}

func TestRoot_RunsSelectedDayAndTask(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"--day", "2", "--task", "1"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "Day 2\nRock Paper Scissors\n\nTask: 1\nResult: 15\n", out.String())
}

func TestRoot_RequiresDayAndTaskFlags(t *testing.T) {
	cases := map[string][]string{
		"no flags":  {},
		"only day":  {"--day", "2"},
		"only task": {"--task", "1"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cli, out := newCLI(t)

			cli.SetArgs(args)
			require.Error(t, cli.Execute(context.Background()))
			assert.Empty(t, out.String())
		})
	}
}

func TestRoot_RejectsSelectorsOutOfRange(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--day", "1", "--task", "1"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDay))
}

func TestRoot_RejectsUnregisteredDays(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--day", "30", "--task", "2"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDay))
}

func TestRoot_DescribeLeavesTheResultUnchanged(t *testing.T) {
	described, describedOut := newCLI(t)
	described.SetArgs([]string{"--day", "2", "--task", "2", "--describe"})
	require.NoError(t, described.Execute(context.Background()))

	plain, plainOut := newCLI(t)
	plain.SetArgs([]string{"--day", "2", "--task", "2"})
	require.NoError(t, plain.Execute(context.Background()))

	assert.Contains(t, describedOut.String(), "Result: 12\n")
	assert.Contains(t, plainOut.String(), "Result: 12\n")
	assert.Greater(t, describedOut.Len(), plainOut.Len())
}

func TestRoot_RunsAreDeterministic(t *testing.T) {
	first, firstOut := newCLI(t)
	first.SetArgs([]string{"--day", "2", "--task", "1"})
	require.NoError(t, first.Execute(context.Background()))

	second, secondOut := newCLI(t)
	second.SetArgs([]string{"--day", "2", "--task", "1"})
	require.NoError(t, second.Execute(context.Background()))

	assert.Equal(t, firstOut.String(), secondOut.String())
}

func TestAll_ReportsPartialFailure(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"all"})
	require.Error(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "day 2 task 1: 15\n")
	assert.Contains(t, out.String(), "day 3 task 1: failed\n")
}

func TestList_PrintsImplementedDays(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"list"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "day 2: Rock Paper Scissors\n")
	assert.Contains(t, out.String(), "day 16: Proboscidea Volcanium\n")
}

func TestVersion_PrintsWithoutError(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}
