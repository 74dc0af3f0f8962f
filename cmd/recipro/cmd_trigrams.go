package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/internal/render"
	"github.com/katalvlaran/recipro/ngram"
)

var trigramsFlags struct {
	input inputFlags
	k     int
}

var trigramsCmd = &cobra.Command{
	Use:   "trigrams",
	Short: "List the most frequent letter trigrams of a text",
	RunE:  runTrigrams,
}

func init() {
	trigramsFlags.input.register(trigramsCmd)
	trigramsCmd.Flags().IntVarP(&trigramsFlags.k, "top", "k", 0, "Number of trigrams to list (default from config)")
}

func runTrigrams(cmd *cobra.Command, _ []string) error {
	k := cfg.TrigramLimit
	if cmd.Flags().Changed("top") {
		k = trigramsFlags.k
	}
	if k < 0 {
		return errors.New("--top must not be negative")
	}
	text, err := trigramsFlags.input.read(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Trigrams(ngram.TopTrigrams(text, k)))

	return nil
}
