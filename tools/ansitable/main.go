package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	plog "github.com/phuslu/log"

	"github.com/tekert/goansi/ansi"
	"github.com/tekert/goansi/assert"
)

// entry is one row of the palette.
type entry struct {
	Attr string `json:"attr"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
	Code string `json:"code"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 2 for bad flags and 1 when
// the output could not be written.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		attrName string
		fgName   string
		bgName   string
		asJSON   bool
		verbose  bool
	)

	fs := flag.NewFlagSet("ansitable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&attrName, "attr", ansi.AllOff.String(), "Text attribute to render ("+names(ansi.TextAttributes())+").")
	fs.StringVar(&fgName, "fg", "", "Only this foreground color ("+names(ansi.ForegroundColors())+"). Default: all.")
	fs.StringVar(&bgName, "bg", "", "Only this background color (same names as -fg). Default: all.")
	fs.BoolVar(&asJSON, "json", false, "Print a JSON array instead of a table.")
	fs.BoolVar(&verbose, "v", false, "Enable debug logging.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ansitable [options]\n\n")
		fmt.Fprintln(stderr, "Prints ANSI SGR escape codes for every foreground/background color pair.")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, "\nExamples:")
		fmt.Fprintln(stderr, "  ansitable -attr BoldOn")
		fmt.Fprintln(stderr, "  ansitable -fg red -json")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := &plog.Logger{
		Level:  plog.InfoLevel,
		Writer: &plog.ConsoleWriter{Writer: stderr},
	}
	if verbose {
		log.SetLevel(plog.DebugLevel)
	}

	entries, err := palette(attrName, fgName, bgName)
	if err != nil {
		fmt.Fprintf(stderr, "ansitable: %v\n", err)
		fs.Usage()
		return 2
	}
	log.Debug().Str("attr", attrName).Int("entries", len(entries)).Msg("palette built")

	if asJSON {
		err = writeJSON(stdout, entries)
	} else {
		err = writeTable(stdout, entries)
	}
	if err != nil {
		log.Error().Err(err).Msg("write failed")
		return 1
	}
	return 0
}

// palette expands the flag selection into entries. Empty fg or bg names
// select every color.
func palette(attrName, fgName, bgName string) ([]entry, error) {
	attr, err := ansi.ParseTextAttribute(attrName)
	if err != nil {
		return nil, err
	}

	fgs := ansi.ForegroundColors()
	if fgName != "" {
		fg, err := ansi.ParseForegroundColor(fgName)
		if err != nil {
			return nil, err
		}
		fgs = []ansi.ForegroundColor{fg}
	}

	bgs := ansi.BackgroundColors()
	if bgName != "" {
		bg, err := ansi.ParseBackgroundColor(bgName)
		if err != nil {
			return nil, err
		}
		bgs = []ansi.BackgroundColor{bg}
	}

	entries := make([]entry, 0, len(fgs)*len(bgs))
	for _, fg := range fgs {
		for _, bg := range bgs {
			entries = append(entries, entry{
				Attr: attr.String(),
				Fg:   fg.String(),
				Bg:   bg.String(),
				Code: ansi.EscapeCode(attr, fg, bg),
			})
		}
	}
	assert.That(len(entries) == len(fgs)*len(bgs), "palette size mismatch")
	return entries, nil
}

func writeJSON(w io.Writer, entries []entry) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding palette: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeTable(w io.Writer, entries []entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "ATTR\tFG\tBG\tCODE\tSAMPLE")
	for _, e := range entries {
		// The sample is written raw so the terminal renders it. Tabwriter
		// counts the escape bytes as width, so it goes in the last column.
		fmt.Fprintf(tw, "%s\t%s\t%s\t%q\t%s sample %s\n", e.Attr, e.Fg, e.Bg, e.Code, e.Code, ansi.Reset)
	}
	return tw.Flush()
}

func names[T fmt.Stringer](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}
	return strings.Join(s, ", ")
}
