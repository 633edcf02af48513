package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Arch8541/limit/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gdcr",
		Short: "GDCR 2017 building regulation engine",
	}

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(normsCmd())
	rootCmd.AddCommand(bulkCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calculateCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "calculate [project-path]",
		Short: "Calculate permissible building parameters for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCalculate(args[0], rulesPath)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule table YAML (default: embedded GDCR 2017)")
	return cmd
}

func validateCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a site description and the rule table without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], rulesPath)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule table YAML (default: embedded GDCR 2017)")
	return cmd
}

func normsCmd() *cobra.Command {
	var category string
	var search string

	cmd := &cobra.Command{
		Use:   "norms [project-path]",
		Short: "List the building norms applicable to a site's intended use",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runNorms(args[0], category, search)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "restrict to one norm category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "free-text search over element, ID, source, and notes")
	return cmd
}

func bulkCmd() *cobra.Command {
	var rulesPath string
	var outPath string
	var workers int
	var template bool

	cmd := &cobra.Command{
		Use:   "bulk [csv-file]",
		Short: "Run batch calculations over a CSV of sites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if template {
				return runBulkTemplate()
			}
			if len(args) != 1 {
				return errMissingCSV
			}
			return runBulk(args[0], rulesPath, outPath, workers)
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule table YAML (default: embedded GDCR 2017)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write results CSV to this file instead of stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "parallel calculator workers")
	cmd.Flags().BoolVar(&template, "template", false, "print a sample import CSV and exit")
	return cmd
}

func serveCmd() *cobra.Command {
	var rulesPath string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local regulation API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(rulesPath, port)
			return srv.Start()
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule table YAML to serve and watch (default: embedded GDCR 2017)")
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
