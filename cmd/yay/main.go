// Command yay checks and reformats documents in the format implemented
// by the go.yay.dev/yay package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.yay.dev/yay"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "yay",
		Short:        "Check and format YAY documents",
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd(), newFmtCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse each file and report the first syntax error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed = true
					continue
				}
				if _, err := yay.Parse(data); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed = true
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed {
				return fmt.Errorf("one or more files failed to parse")
			}
			return nil
		},
	}
}

func newFmtCmd() *cobra.Command {
	var write bool
	var inline bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Re-emit each file in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []yay.EmitOption{yay.WithIndent(!inline)}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				v, err := yay.Parse(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				out, err := yay.Emit(v, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if write {
					if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	cmd.Flags().BoolVarP(&inline, "inline", "i", false, "emit in inline form instead of block form")
	return cmd
}
