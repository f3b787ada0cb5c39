package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/paiban/tabuplan/internal/constraints"
	apperrors "github.com/paiban/tabuplan/pkg/errors"
)

func newConstraintsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "列出代价模型中的约束及其参数",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			library := constraints.GetLibrary()
			out := cmd.OutOrStdout()

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(library); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(library)
			case "text":
				for _, def := range library {
					fmt.Fprintf(out, "%s (%s, %s)\n  %s\n  %s\n", def.DisplayName, def.Name, def.Category, def.Formula, def.Description)
					for _, p := range def.Params {
						fmt.Fprintf(out, "  %-12s %s，默认 %s\n", p.Flag, p.Description, p.Default)
					}
				}
				return nil
			default:
				return apperrors.InvalidInput("format", fmt.Sprintf("不支持的输出格式 %q", format))
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "输出格式 text/yaml/json")

	return cmd
}
