// Command unitgen turns a YAML unit system declaration into a Go
// source file defining the descriptor family and its unit aliases.
// It is meant to be driven by go:generate next to the declaration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unyt-go/unyt/unitgen"
)

func main() {
	var (
		declPath string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:          "unitgen",
		Short:        "generate a unit descriptor family from a YAML declaration",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			decl, err := os.ReadFile(declPath)
			if err != nil {
				return fmt.Errorf("read declaration: %w", err)
			}

			src, err := unitgen.Generate(decl)
			if err != nil {
				return fmt.Errorf("generate %s: %w", declPath, err)
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}

			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				return fmt.Errorf("write generated file: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&declPath, "declaration", "", "path of the YAML unit system declaration")
	cmd.Flags().StringVar(&outPath, "out", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("declaration")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
