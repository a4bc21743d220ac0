package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"personadash/adapters/excel"
	"personadash/app"
	"personadash/internal/config"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "personadash",
		Short: "Classify survey respondents into learner personas",
	}

	rootCmd.AddCommand(
		newProcessCmd(),
		newTablesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProcessCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process a survey spreadsheet and print the dashboard payload as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := buildPipeline()
			if err != nil {
				return err
			}

			table, err := excel.NewReader(args[0]).Read()
			if err != nil {
				return err
			}

			payload, err := pipeline.Run(table)
			if err != nil {
				return err
			}
			return printJSON(cmd, payload, compact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	return cmd
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the effective pattern and rule tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			patterns, rules, err := cfg.LoadTables()
			if err != nil {
				return err
			}

			out := map[string]interface{}{
				"pattern_table": patterns,
				"rule_table":    rules,
			}
			return printJSON(cmd, out, false)
		},
	}
}

func buildPipeline() (*app.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	patterns, rules, err := cfg.LoadTables()
	if err != nil {
		return nil, err
	}
	return app.NewPipeline(patterns, rules)
}

func printJSON(cmd *cobra.Command, v interface{}, compact bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
