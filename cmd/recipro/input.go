package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/mapping"
)

// inputFlags selects where one-shot commands read their text from.
type inputFlags struct {
	text string
	file string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.text, "text", "", "Text to process")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "Read text from file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
}

// read returns --text, the contents of --file, or all of stdin.
func (in *inputFlags) read(cmd *cobra.Command) (string, error) {
	switch {
	case in.text != "":
		return in.text, nil
	case in.file != "":
		data, err := os.ReadFile(in.file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

// parsePairs builds a mapping from identity by associating each
// comma-separated two-letter pair in order, e.g. "QE,TX".
func parsePairs(list string) (mapping.Mapping, error) {
	m := mapping.Identity()
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r := []rune(p)
		if len(r) != 2 {
			return m, fmt.Errorf("pair %q: want exactly two letters", p)
		}
		if err := m.AssociateRunes(r[0], r[1]); err != nil {
			return m, fmt.Errorf("pair %q: %w", p, err)
		}
	}

	return m, nil
}
