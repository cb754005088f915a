package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wealthcoach/wealthcoach/internal/output"
	"gopkg.in/yaml.v3"
)

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			example := a.parser.CreateExamplePlanFile()
			if out != "" {
				if err := a.parser.SavePlanFile(example, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example plan file written to %s\n", out)
				return nil
			}
			data, err := yaml.Marshal(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintln(cmd.OutOrStdout(), "Use 'all' with --save to write console, detailed-csv and html at once.")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wealthcoach %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", commit)
		},
	}
}
