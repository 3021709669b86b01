package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/tcss/internal/tcss"
)

var treeCmd = &cobra.Command{
	Use:   "tree [paths...]",
	Short: "Dump syntax trees as JSON or YAML",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig(args)
		format := tcss.TreeFormat(getString("tree.format", string(tcss.TreeJSON)))

		ctx, cancel := withTimeout(cmd.Context())
		defer cancel()

		parsed, _, err := tcss.ParseFiles(ctx, cfg)
		if err != nil {
			return err
		}
		return tcss.WriteTree(cmd.OutOrStdout(), tcss.TreeDocs(parsed), format)
	},
}

func init() {
	treeCmd.Flags().String("format", "json", "Tree encoding: json|yaml")
}
