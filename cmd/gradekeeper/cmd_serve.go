package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mertkaya/gradekeeper/internal/server"
)

func newServeCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(stdout)
		},
	}
}

func runServe(stdout io.Writer) error {
	srv, err := server.NewServer()
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}
	fmt.Fprintln(stdout, "Gradekeeper API server starting")
	return srv.Run()
}
