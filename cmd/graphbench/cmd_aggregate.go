package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphbench/results"
)

func (a *app) aggregateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "aggregate [<resultsRoot> [<inputsRoot>]]",
		Short: "Fold result records into one tab-separated report",
		Long: `Every subdirectory of resultsRoot is an algorithm and every file in
inputsRoot is a graph. For each graph and algorithm the record
resultsRoot/<algorithm>/<graph file> gives the result, max clique and elapsed
seconds (NA when absent, ERR when the run failed); n, m and max.deg are read
from the graph itself. Roots default to results_root and inputs_root from the
config file.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := results.Options{
				ResultsRoot:  a.cfg.ResultsRoot,
				InputsRoot:   a.cfg.InputsRoot,
				StrictInputs: a.cfg.StrictInputs,
				Logger:       a.log,
			}
			if len(args) > 0 {
				opts.ResultsRoot = args[0]
			}
			if len(args) > 1 {
				opts.InputsRoot = args[1]
			}
			if cmd.Flags().Changed("strict") {
				opts.StrictInputs = strict
			}

			tbl, err := results.Aggregate(opts)
			if err != nil {
				return err
			}
			a.log.Debug("report built", "algorithms", len(tbl.Algorithms), "rows", len(tbl.Rows))

			return tbl.WriteTSV(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on an unreadable or malformed input graph")

	return cmd
}
