package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/internal/logging"
	"github.com/katalvlaran/recipro/internal/store"
	"github.com/katalvlaran/recipro/session"
)

var crackFlags struct {
	text    string
	file    string
	session string
}

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Interactively break a ciphertext",
	Long: "crack opens a command loop: load a ciphertext, seed the mapping with\n" +
		"'mapbyfreq', refine it with 'assoc X Y' and inspect progress with 'show'.",
	RunE: runCrack,
}

func init() {
	f := crackCmd.Flags()
	f.StringVar(&crackFlags.text, "text", "", "Ciphertext to load at start")
	f.StringVarP(&crackFlags.file, "file", "f", "", "Read the ciphertext from file")
	f.StringVar(&crackFlags.session, "session", "", "Restore a saved session at start")
	crackCmd.MarkFlagsMutuallyExclusive("text", "file", "session")
}

func runCrack(cmd *cobra.Command, _ []string) error {
	log := logging.New("crack")
	s := session.New(
		session.WithSelfPairPolicy(cfg.Policy()),
		session.WithTrigramLimit(cfg.TrigramLimit),
	)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		// Persistence is optional; the loop works without it.
		log.Warn("session store unavailable", slog.String("path", cfg.DBPath), slog.Any("error", err))
	} else {
		defer st.Close()
	}

	ctx := cmd.Context()
	switch {
	case crackFlags.session != "":
		if st == nil {
			return fmt.Errorf("open session %q: store unavailable", crackFlags.session)
		}
		if err := restoreSession(ctx, st, s, crackFlags.session); err != nil {
			return fmt.Errorf("open session: %w", err)
		}
	case crackFlags.text != "" || crackFlags.file != "":
		in := inputFlags{text: crackFlags.text, file: crackFlags.file}
		text, err := in.read(cmd)
		if err != nil {
			return err
		}
		if err := s.Load(text); err != nil {
			return fmt.Errorf("load ciphertext: %w", err)
		}
	}

	return newLoop(s, st, cmd.InOrStdin(), cmd.OutOrStdout()).run(ctx)
}
