package main

import (
	"github.com/spf13/cobra"
)

var findAligned bool

func init() {
	cmd := newFindCmd()
	cmd.Flags().BoolVar(&findAligned, "aligned", false, "Only report matches on byte boundaries")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <haystack> <pattern>",
		Short: "List every occurrence of a bit pattern",
		Long: `The find command scans a bit literal for a pattern and prints the bit
position of every occurrence. Matches may overlap: after a match at p the
scan resumes at p+1.

Example:
  bitctl find 0b1011011 0b011
  bitctl find 0xabcd 0xbc --aligned`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
}

func runFind(args []string) error {
	haystack, err := parseLiteral(args[0])
	if err != nil {
		return err
	}
	pattern, err := parseLiteral(args[1])
	if err != nil {
		return err
	}
	printVerbose("Scanning %d bits for a %d-bit pattern\n", haystack.Len(), pattern.Len())

	var positions []int
	if findAligned {
		start := 0
		for {
			p, err := haystack.FindRange(pattern, start, haystack.Len(), true)
			if err != nil {
				break
			}
			positions = append(positions, p)
			start = p + 1
		}
	} else {
		positions = haystack.FindAll(pattern).Positions()
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"haystack":  args[0],
			"pattern":   args[1],
			"positions": positions,
			"matches":   len(positions),
		})
	}
	if len(positions) == 0 {
		printInfo("no matches\n")
		return nil
	}
	for _, p := range positions {
		printInfo("%d\n", p)
	}
	return nil
}
