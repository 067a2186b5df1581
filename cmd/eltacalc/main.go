package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wukjhc-create/elta-crm-sub005/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eltacalc",
		Short: "Electrical installation calculation engine (DS/HD 60364)",
	}

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(panelCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [project-path]",
		Short: "Run the full calculation pipeline and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCalc(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project input without running the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func panelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panel [project-path]",
		Short: "Compute and display the panel design and compliance report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPanel(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local HTTP API for the CRM frontend",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv, err := server.New(args[0], port)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
