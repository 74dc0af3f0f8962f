package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/recipro/frequency"
	"github.com/katalvlaran/recipro/internal/render"
	"github.com/katalvlaran/recipro/internal/store"
	"github.com/katalvlaran/recipro/session"
)

// chartWidth is the bar length of the largest value in "graph".
const chartWidth = 40

// maxLine bounds one input line; a whole ciphertext may arrive on one.
const maxLine = 16 << 20

// loop is the line-oriented command interpreter behind "recipro crack".
// It translates commands into session calls and renders the results; all
// state lives in the session.
type loop struct {
	s   *session.Session
	st  *store.Store // nil disables save/open/sessions
	in  *bufio.Scanner
	out io.Writer
}

func newLoop(s *session.Session, st *store.Store, in io.Reader, out io.Writer) *loop {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &loop{s: s, st: st, in: sc, out: out}
}

// run reads commands until quit or end of input.
func (l *loop) run(ctx context.Context) error {
	l.println(render.Section("Reciprocal Cipher Cracker"))
	l.println(`Type "help" for a list of commands.`)

	for {
		fmt.Fprint(l.out, "\n> ")
		if !l.in.Scan() {
			l.println("")
			return l.in.Err()
		}
		quit, err := l.exec(ctx, l.in.Text())
		if err != nil {
			l.println(render.Errorf("%v", err))
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line. Errors are reported to the analyst and the
// loop continues; only quit ends it.
func (l *loop) exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		l.println("Exiting...")
		return true, nil
	case "help":
		l.help()
	case "load":
		return false, l.load(args)
	case "mapbyfreq":
		if err := l.s.SeedByFrequency(); err != nil {
			return false, err
		}
		l.println("Mapping seeded by frequency.")
	case "assoc", "a":
		return false, l.assoc(args)
	case "reset":
		l.s.Reset()
		l.println("Mapping reset to identity pairs.")
	case "show":
		l.show()
	case "graph":
		if !l.s.Loaded() {
			return false, session.ErrNotLoaded
		}
		l.println(render.Frequencies(l.s.Frequencies(), frequency.English, chartWidth))
	case "check":
		l.println(render.Check(l.s.Check()))
	case "save":
		return false, l.save(ctx, args)
	case "open":
		return false, l.open(ctx, args)
	case "sessions":
		return false, l.list(ctx)
	default:
		return false, fmt.Errorf("unknown command %q, type 'help' for options", cmd)
	}

	return false, nil
}

func (l *loop) help() {
	l.println("\nAvailable Commands")
	l.println("  load [text]     - Enter a new ciphertext (inline or on the next line)")
	l.println("  mapbyfreq       - Seed the mapping from letter frequencies")
	l.println("  assoc <L1> <L2> - Associate two letters (e.g. 'assoc A E'), alias 'a'")
	l.println("  reset           - Reset the mapping to identity pairs")
	l.println("  show            - Display mapping, top trigrams and decrypted output")
	l.println("  graph           - Letter frequency chart: ciphertext vs English")
	l.println("  check           - Check that the mapping is reciprocal")
	l.println("  save <name>     - Save ciphertext and mapping")
	l.println("  open <name>     - Restore a saved session")
	l.println("  sessions        - List saved sessions")
	l.println("  help            - Show this menu")
	l.println("  quit / exit     - Exit the program")
}

func (l *loop) load(args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		l.println("Enter your ciphertext (press Enter to finish):")
		fmt.Fprint(l.out, ">> ")
		if !l.in.Scan() {
			return session.ErrEmptyCiphertext
		}
		text = l.in.Text()
	}
	if err := l.s.Load(strings.TrimSpace(text)); err != nil {
		return err
	}
	l.println("Ciphertext loaded successfully.")

	return nil
}

func (l *loop) assoc(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: assoc A B")
	}
	a, b := []rune(args[0]), []rune(args[1])
	if len(a) != 1 || len(b) != 1 {
		return errors.New("usage: assoc A B (single letters)")
	}
	if err := l.s.Associate(a[0], b[0]); err != nil {
		return err
	}
	l.println(fmt.Sprintf("Associated '%s' with '%s'.", strings.ToUpper(args[0]), strings.ToUpper(args[1])))

	return nil
}

func (l *loop) show() {
	if !l.s.Loaded() {
		l.println("No ciphertext loaded. Type 'load' first.")
		return
	}
	l.println("\n" + render.Section("Current Mapping"))
	l.println(render.Mapping(l.s.Mapping()))
	l.println("\n" + render.Section("Top Trigrams (Decrypted)"))
	l.println(render.Trigrams(l.s.Trigrams()))
	l.println("\n" + render.Section("Decrypted Output"))
	l.println(render.Boxed(l.s.Decoded()))
}

func (l *loop) save(ctx context.Context, args []string) error {
	if l.st == nil {
		return errors.New("session store unavailable")
	}
	if len(args) != 1 {
		return errors.New("usage: save NAME")
	}
	rec := store.Record{
		Name:       args[0],
		Ciphertext: l.s.Ciphertext(),
		Mapping:    l.s.Mapping(),
		Policy:     l.s.Policy(),
	}
	if err := l.st.Save(ctx, rec); err != nil {
		return err
	}
	l.println(fmt.Sprintf("Session %q saved.", args[0]))

	return nil
}

func (l *loop) open(ctx context.Context, args []string) error {
	if l.st == nil {
		return errors.New("session store unavailable")
	}
	if len(args) != 1 {
		return errors.New("usage: open NAME")
	}
	if err := restoreSession(ctx, l.st, l.s, args[0]); err != nil {
		return err
	}
	l.println(fmt.Sprintf("Session %q restored.", args[0]))

	return nil
}

func (l *loop) list(ctx context.Context) error {
	if l.st == nil {
		return errors.New("session store unavailable")
	}
	return printSessions(ctx, l.st, l.out)
}

func (l *loop) println(s string) {
	fmt.Fprintln(l.out, s)
}

// restoreSession loads name from st into s: ciphertext first, then mapping.
func restoreSession(ctx context.Context, st *store.Store, s *session.Session, name string) error {
	rec, err := st.Load(ctx, name)
	if err != nil {
		return err
	}
	if rec.Ciphertext != "" {
		if err := s.Load(rec.Ciphertext); err != nil {
			return err
		}
	}

	return s.Restore(rec.Mapping)
}

func printSessions(ctx context.Context, st *store.Store, out io.Writer) error {
	list, err := st.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No saved sessions.")
		return nil
	}
	for _, sum := range list {
		fmt.Fprintf(out, "  %-20s %2d pairs  %s\n", sum.Name, sum.Pairs, sum.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}

	return nil
}
