package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mertkaya/gradekeeper/internal/bootstrap"
)

func newMigrateCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMigrate(stdout)
		},
	}
}

func runMigrate(stdout io.Writer) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// SetupDatabase runs pending migrations after connecting.
	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	defer database.Close()

	fmt.Fprintln(stdout, "Migrations applied")
	return nil
}
