// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migratecmd

import (
	"github.com/mbattoken/mbat-cli/cmd/flags"
	"github.com/mbattoken/mbat-cli/internal/migrations"
	"github.com/mbattoken/mbat-cli/pkg/application"
	"github.com/mbattoken/mbat-cli/pkg/cobrautils"
	"github.com/mbattoken/mbat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app         *application.App
	deployFlags flags.DeployFlags
	fromFlag    int
	toFlag      int
	listFlag    bool
)

// mbat migrate
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run the deployment migrations",
		Long: `The migrate command runs the numbered deployment migrations in order
against an EVM network, and records every contract deployed under the
given network name.

Migrations are never skipped because they ran before: running migrate
twice deploys the contracts twice.`,
		RunE: migrate,
		Args: cobrautils.ExactArgs(0),
	}
	app = injectedApp
	deployFlags.AddToCmd(cmd)
	cmd.Flags().IntVar(&fromFlag, "from", 0, "first migration number to run")
	cmd.Flags().IntVar(&toFlag, "to", 0, "last migration number to run (0 runs through the last one)")
	cmd.Flags().BoolVar(&listFlag, "list", false, "list the migrations and exit")
	return cmd
}

func migrate(cmd *cobra.Command, _ []string) error {
	if listFlag {
		printMigrations()
		return nil
	}
	_, err := Deploy(cmd, app, &deployFlags, migrations.Options{From: fromFlag, To: toFlag})
	return err
}

func printMigrations() {
	table := ux.DefaultTable([]string{"Number", "Migration"})
	for _, m := range migrations.List() {
		_ = table.Append([]string{ux.ConvertToStringWithThousandSeparator(uint64(m.Number)), m.String()})
	}
	_ = table.Render()
}
