// Command wordtally is a minimal CLI over the engine package: a tally
// subcommand prints the sorted word frequency table for a file (or
// stdin), and a lookup subcommand prints every Lexeme a word
// materializes. The richer hilite/read/word surface this module's
// external collaborators build against is out of scope here.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-prose/wordtally/engine"
)

var (
	app = kingpin.New("wordtally", "Tokenize and tally English prose.")

	tallyCmd  = app.Command("tally", "Print the word frequency table for a file.")
	tallyFile = tallyCmd.Arg("file", "input file; reads stdin if omitted").String()

	lookupCmd  = app.Command("lookup", "Print every lexicon entry for a word.")
	lookupWord = lookupCmd.Arg("word", "word to look up").Required().String()
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	e := engine.New()

	switch cmd {
	case tallyCmd.FullCommand():
		runTally(e, *tallyFile)
	case lookupCmd.FullCommand():
		runLookup(e, *lookupWord)
	}
}

func runTally(e *engine.Engine, path string) {
	r := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("open input file")
		}
		defer f.Close()
		r = f
	}

	wt, err := e.Tally(r)
	if err != nil {
		log.Fatal().Err(err).Msg("tally input")
	}
	for _, entry := range wt.IntoEntries() {
		fmt.Println(entry.String())
	}
}

func runLookup(e *engine.Engine, word string) {
	lexemes := e.Lookup(word)
	if len(lexemes) == 0 {
		fmt.Printf("%s: not found\n", word)
		return
	}
	for _, lx := range lexemes {
		fmt.Printf("%s (%s): %v\n", lx.Lemma(), lx.WordClass().Code(), lx.Forms())
	}
}
