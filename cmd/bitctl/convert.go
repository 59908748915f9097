package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "bin", "Target encoding: bin, oct or hex")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <literal>",
		Short: "Convert a bit literal between encodings",
		Long: `The convert command re-renders a bit literal in another base.

Octal output needs a bit length divisible by 3 and hexadecimal output needs
one divisible by 4; other lengths are rejected rather than padded.

Example:
  bitctl convert 0xdead --to bin
  bitctl convert 0b111101101 --to oct`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func runConvert(args []string) error {
	b, err := parseLiteral(args[0])
	if err != nil {
		return err
	}
	printVerbose("Parsed %d bits\n", b.Len())

	var out string
	switch convertTo {
	case "bin":
		out = b.Binary()
	case "oct":
		out, err = b.Octal()
	case "hex":
		out, err = b.Hexadecimal()
	default:
		return fmt.Errorf("unknown target encoding %q (want bin, oct or hex)", convertTo)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":    args[0],
			"encoding": convertTo,
			"result":   out,
			"bits":     b.Len(),
		})
	}
	printInfo("%s\n", out)
	return nil
}
