// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package migrations holds the numbered deployment scripts and the runner
// that executes them in order against a network.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/mbattoken/mbat-cli/pkg/ux"
)

const (
	runMessage       = "Running deployment migrations..."
	endMessage       = "Deployment migrations completed"
	failedEndMessage = "Deployment migrations FAILED"
)

var (
	ErrInvalidRange = errors.New("invalid migration range")
	ErrNoMigrations = errors.New("no migrations selected")
)

// Environment is what the orchestrator hands to every script.
type Environment struct {
	Artifacts artifacts.Registry
	Deployer  contract.Deployer
	Network   string
}

// Options selects the migrations to run. To == 0 runs through the last one.
type Options struct {
	From int
	To   int
}

// Migration identifies a registered script.
type Migration struct {
	Number int
	Name   string
}

func (m Migration) String() string {
	return fmt.Sprintf("%d_%s", m.Number, m.Name)
}

type migrationFunc func(context.Context, *Environment, *migrationRunner) error

type migration struct {
	name string
	fn   migrationFunc
}

type migrationRunner struct {
	showMsg     bool
	running     bool
	migrations  map[int]migration
	deployments []*contract.Deployment
}

// number 1 is the framework's own bookkeeping contract, which is never deployed here
var defaultMigrations = map[int]migration{
	2: {name: "deploy_mbat_token", fn: deployMBATToken},
}

// List returns the registered migrations in execution order.
func List() []Migration {
	return newRunner().list()
}

// Run executes the selected migrations in ascending order, stopping at the
// first failure. It returns every deployment made, including those made
// before a failure.
func Run(ctx context.Context, env *Environment, opts Options) ([]*contract.Deployment, error) {
	runner := newRunner()
	if err := runner.selectRange(opts); err != nil {
		return nil, err
	}
	err := runner.run(ctx, env)
	return runner.deployments, err
}

func newRunner() *migrationRunner {
	migs := make(map[int]migration, len(defaultMigrations))
	for n, m := range defaultMigrations {
		migs[n] = m
	}
	return &migrationRunner{
		showMsg:    true,
		migrations: migs,
	}
}

func (m *migrationRunner) list() []Migration {
	out := make([]Migration, 0, len(m.migrations))
	for _, n := range m.sortedNumbers() {
		out = append(out, Migration{Number: n, Name: m.migrations[n].name})
	}
	return out
}

func (m *migrationRunner) selectRange(opts Options) error {
	if opts.From < 0 || opts.To < 0 || (opts.To != 0 && opts.To < opts.From) {
		return fmt.Errorf("%w: from %d to %d", ErrInvalidRange, opts.From, opts.To)
	}
	for n := range m.migrations {
		if n < opts.From || (opts.To != 0 && n > opts.To) {
			delete(m.migrations, n)
		}
	}
	if len(m.migrations) == 0 {
		return fmt.Errorf("%w: from %d to %d", ErrNoMigrations, opts.From, opts.To)
	}
	return nil
}

func (m *migrationRunner) sortedNumbers() []int {
	numbers := make([]int, 0, len(m.migrations))
	for n := range m.migrations {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func (m *migrationRunner) run(ctx context.Context, env *Environment) error {
	for _, n := range m.sortedNumbers() {
		mig := m.migrations[n]
		ux.Logger.Info("running migration %d_%s on %s", n, mig.name, env.Network)
		if err := mig.fn(ctx, env, m); err != nil {
			if m.running {
				ux.Logger.PrintToUser(failedEndMessage)
			}
			return fmt.Errorf("migration #%d (%s) failed: %w", n, mig.name, err)
		}
	}
	if m.running {
		ux.Logger.PrintToUser(endMessage)
	}
	return nil
}

// printMigrationMessage announces the run once, when the first script
// actually does something.
func (m *migrationRunner) printMigrationMessage() {
	if m.showMsg {
		ux.Logger.PrintToUser(runMessage)
	}
	m.showMsg = false
	m.running = true
}

func (m *migrationRunner) recordDeployment(d *contract.Deployment) {
	if d != nil {
		m.deployments = append(m.deployments, d)
	}
}
