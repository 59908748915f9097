package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <literal>",
		Short: "Report structural information about a bit literal",
		Long: `The info command prints the bit length, the population count, and the
renderings that the literal's length supports.

Example:
  bitctl info 0xdeadbeef`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	b, err := parseLiteral(args[0])
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"bits":   b.Len(),
		"ones":   b.Count(true),
		"zeros":  b.Count(false),
		"binary": b.Binary(),
	}
	if s, err := b.Octal(); err == nil {
		out["octal"] = s
	}
	if s, err := b.Hexadecimal(); err == nil {
		out["hexadecimal"] = s
	}

	if jsonOut {
		return printJSON(out)
	}
	printInfo("bits:   %d\n", b.Len())
	printInfo("ones:   %d\n", b.Count(true))
	printInfo("zeros:  %d\n", b.Count(false))
	printInfo("binary: %s\n", b.Binary())
	if s, ok := out["octal"]; ok {
		printInfo("octal:  %s\n", s)
	}
	if s, ok := out["hexadecimal"]; ok {
		printInfo("hex:    %s\n", s)
	}
	return nil
}
