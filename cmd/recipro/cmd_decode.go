package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/decode"
	"github.com/katalvlaran/recipro/internal/store"
	"github.com/katalvlaran/recipro/mapping"
)

var decodeFlags struct {
	input   inputFlags
	key     string
	pairs   string
	session string
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a text with a given reciprocal key",
	Long: "decode applies a mapping to a text. The mapping is a 26-letter key\n" +
		"(--key), a list of pairs built up from identity (--pairs QE,TX) or the\n" +
		"mapping of a saved session (--session).",
	RunE: runDecode,
}

func init() {
	decodeFlags.input.register(decodeCmd)
	f := decodeCmd.Flags()
	f.StringVar(&decodeFlags.key, "key", "", "26-letter reciprocal key, partner of A..Z")
	f.StringVar(&decodeFlags.pairs, "pairs", "", "Comma-separated letter pairs, e.g. QE,TX")
	f.StringVar(&decodeFlags.session, "session", "", "Use the mapping of a saved session")
	decodeCmd.MarkFlagsMutuallyExclusive("key", "pairs", "session")
	decodeCmd.MarkFlagsOneRequired("key", "pairs", "session")
}

func runDecode(cmd *cobra.Command, _ []string) error {
	m, err := decodeMapping(cmd)
	if err != nil {
		return err
	}
	text, err := decodeFlags.input.read(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), decode.Decode(text, m))

	return nil
}

func decodeMapping(cmd *cobra.Command) (mapping.Mapping, error) {
	switch {
	case decodeFlags.key != "":
		return mapping.ParseKey(decodeFlags.key)
	case decodeFlags.pairs != "":
		return parsePairs(decodeFlags.pairs)
	case decodeFlags.session != "":
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return mapping.Mapping{}, err
		}
		defer st.Close()
		rec, err := st.Load(cmd.Context(), decodeFlags.session)
		if err != nil {
			return mapping.Mapping{}, fmt.Errorf("session %q: %w", decodeFlags.session, err)
		}
		return rec.Mapping, nil
	}

	return mapping.Mapping{}, errors.New("one of --key, --pairs or --session is required")
}
