// Package app implements the application layer for advent.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/illBeRoy/advent-2022/internal/core/ports"
	"github.com/illBeRoy/advent-2022/internal/days"
	"github.com/illBeRoy/advent-2022/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *days.Registry
	inputs       ports.InputSource
	hasher       ports.Hasher
	store        ports.AnswerStore
	logger       ports.Logger
	runner       *runner.Runner
	out          io.Writer
}

// Options selects what a single invocation runs.
type Options struct {
	Day      int
	Task     int
	Describe bool
	NoCache  bool
}

// New creates a new App instance. Results print to stdout; use WithOutput to
// capture them in tests.
func New(
	loader ports.ConfigLoader,
	registry *days.Registry,
	inputs ports.InputSource,
	hasher ports.Hasher,
	store ports.AnswerStore,
	log ports.Logger,
	run *runner.Runner,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		inputs:       inputs,
		hasher:       hasher,
		store:        store,
		logger:       log,
		runner:       run,
		out:          os.Stdout,
	}
}

// WithOutput redirects result output to the given writer.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run solves a single day's task and prints the result.
func (a *App) Run(ctx context.Context, opts Options) error {
	sel := domain.Selector{Day: opts.Day, Task: opts.Task}
	if err := sel.Validate(); err != nil {
		return err
	}

	solver, err := a.registry.Solver(sel.Day)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("resolved day %d task %d: %s", sel.Day, sel.Task, solver.Title()))

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	input, err := a.inputs.InputFor(cfg.InputsDir, sel.Day)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := a.solve(ctx, sel, input, cfg.CacheEnabled && !opts.NoCache)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("day %d task %d solved in %s", sel.Day, sel.Task, time.Since(start)))

	fmt.Fprintf(a.out, "Day %d\n%s\n\n", sel.Day, solver.Title())
	if opts.Describe {
		fmt.Fprintf(a.out, "%s\n\n", solver.Description())
	}
	fmt.Fprintf(a.out, "Task: %d\nResult: %s\n", sel.Task, result)

	return nil
}

// RunAll solves every registered (day, task) pair concurrently and prints the
// outcomes in selector order. Individual failures are reported without
// stopping the batch; the batch itself fails when any selector did.
func (a *App) RunAll(ctx context.Context, opts Options) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var selectors []domain.Selector
	for _, day := range a.registry.Days() {
		selectors = append(selectors,
			domain.Selector{Day: day, Task: 1},
			domain.Selector{Day: day, Task: 2},
		)
	}
	a.logger.Info(fmt.Sprintf("running %d tasks across %d days", len(selectors), len(selectors)/2))

	outcomes := a.runner.Run(ctx, selectors, func(ctx context.Context, sel domain.Selector) (domain.Result, error) {
		input, err := a.inputs.InputFor(cfg.InputsDir, sel.Day)
		if err != nil {
			return domain.Result{}, err
		}
		return a.solve(ctx, sel, input, cfg.CacheEnabled && !opts.NoCache)
	})

	failed := 0
	for _, outcome := range outcomes {
		switch {
		case outcome.Err != nil:
			failed++
			a.logger.Error(outcome.Err)
			fmt.Fprintf(a.out, "day %d task %d: failed\n", outcome.Selector.Day, outcome.Selector.Task)
		case strings.Contains(outcome.Result.String(), "\n"):
			fmt.Fprintf(a.out, "day %d task %d:\n%s\n", outcome.Selector.Day, outcome.Selector.Task, outcome.Result)
		default:
			fmt.Fprintf(a.out, "day %d task %d: %s\n", outcome.Selector.Day, outcome.Selector.Task, outcome.Result)
		}
	}

	if failed > 0 {
		return zerr.With(zerr.New("some tasks failed"), "failed", failed)
	}
	return nil
}

// List prints every registered day with its title.
func (a *App) List() error {
	for _, day := range a.registry.Days() {
		solver, err := a.registry.Solver(day)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "day %d: %s\n", day, solver.Title())
	}
	return nil
}

// solve computes the selector's result, consulting the answer cache when
// enabled. Cache read failures fall back to recomputation; write failures
// surface as errors so a broken cache file is noticed.
func (a *App) solve(_ context.Context, sel domain.Selector, input string, useCache bool) (domain.Result, error) {
	solver, err := a.registry.Solver(sel.Day)
	if err != nil {
		return domain.Result{}, err
	}

	var key, hash string
	if useCache {
		hash = a.hasher.HashInput(input)
		key = domain.AnswerKey(sel, hash)

		cached, err := a.store.Get(key)
		switch {
		case err != nil:
			a.logger.Warn(fmt.Sprintf("answer cache read failed, recomputing: %v", err))
		case cached != nil:
			a.logger.Info(fmt.Sprintf("answer cache hit for day %d task %d", sel.Day, sel.Task))
			return cached.Result, nil
		}
	}

	part := solver.Part1
	if sel.Task == 2 {
		part = solver.Part2
	}

	result, err := part(input)
	if err != nil {
		return domain.Result{}, zerr.With(zerr.With(err, "day", sel.Day), "task", sel.Task)
	}

	if useCache {
		answer := domain.Answer{
			Key:       key,
			Day:       sel.Day,
			Task:      sel.Task,
			InputHash: hash,
			Result:    result,
		}
		if err := a.store.Put(answer); err != nil {
			return domain.Result{}, zerr.Wrap(err, "failed to store answer in cache")
		}
	}

	return result, nil
}
