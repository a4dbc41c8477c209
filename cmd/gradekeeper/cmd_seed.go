package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/bootstrap"
)

func newSeedCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Wipe the database and generate a fresh synthetic dataset",
		Long: `Wipe the database and generate a fresh synthetic dataset.

All existing faculties, students, courses and grades are removed before
the new data is generated. Refused when the server mode is production.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, stdout)
		},
	}
}

func runSeed(cmd *cobra.Command, stdout io.Writer) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	seedService := services.NewSeedService(database, cfg.Server.Mode, lgr)
	result, err := seedService.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("generating dataset: %w", err)
	}

	fmt.Fprintf(stdout, "Generated %d faculties, %d courses, %d students, %d grades\n",
		result.Faculties, result.Courses, result.Students, result.Grades)
	return nil
}
