package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/frequency"
	"github.com/katalvlaran/recipro/internal/render"
)

var freqInput inputFlags

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Print the letter frequency table and ranking of a text",
	RunE:  runFreq,
}

func init() {
	freqInput.register(freqCmd)
}

func runFreq(cmd *cobra.Command, _ []string) error {
	text, err := freqInput.read(cmd)
	if err != nil {
		return err
	}
	counts := frequency.Count(text)
	table := frequency.FromCounts(counts)

	var ranking strings.Builder
	for _, l := range frequency.Rank(table) {
		ranking.WriteString(l.String())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Letters: %d\n", counts.Total())
	fmt.Fprintf(out, "Ranking: %s\n", ranking.String())
	fmt.Fprintf(out, "English: %s\n\n", frequency.EnglishOrder)
	fmt.Fprintln(out, render.Frequencies(table, frequency.English, chartWidth))

	return nil
}
