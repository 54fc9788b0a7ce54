// Command wordtallyd exposes the tokenizer, tally, and lexicon as a
// JSON REST API.
//
// Endpoints:
//
//	GET  /api/tokenize?text=...
//	POST /api/tally            body: {"text":"..."}
//	GET  /api/lexicon?word=...
//	GET  /api/kinds
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-prose/wordtally/classifier"
	"github.com/go-prose/wordtally/engine"
	"github.com/go-prose/wordtally/internal/config"
	"github.com/go-prose/wordtally/lexicon"
	"github.com/go-prose/wordtally/tokenizer"
)

// ---- JSON response types ------------------------------------------------

type tripleJSON struct {
	Chunk string `json:"chunk"`
	Text  string `json:"text"`
	Kind  string `json:"kind"`
}

type tokenizeResponse struct {
	Triples []tripleJSON `json:"triples"`
}

type wordEntryJSON struct {
	Seen uint64 `json:"seen"`
	Word string `json:"word"`
	Kind string `json:"kind"`
}

type tallyResponse struct {
	Entries []wordEntryJSON `json:"entries"`
}

type lexemeJSON struct {
	Lemma string   `json:"lemma"`
	Class string   `json:"class"`
	Forms []string `json:"forms"`
}

type lexiconResponse struct {
	Word    string       `json:"word"`
	Lexemes []lexemeJSON `json:"lexemes"`
}

type kindJSON struct {
	Code string `json:"code"`
}

type kindsResponse struct {
	Kinds []kindJSON `json:"kinds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toLexemeJSON(l *lexicon.Lexeme) lexemeJSON {
	return lexemeJSON{Lemma: l.Lemma(), Class: l.WordClass().Code(), Forms: l.Forms()}
}

// ---- handlers ---------------------------------------------------------------

func handleTokenize(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		var out []tripleJSON
		for tr := range e.Tokenize(strings.NewReader(text)) {
			out = append(out, tripleJSON{Chunk: tr.Chunk.String(), Text: tr.Text, Kind: tr.Kind.Code()})
		}
		writeJSON(w, http.StatusOK, tokenizeResponse{Triples: out})
	}
}

func handleTally(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		wt, err := e.Tally(strings.NewReader(body.Text))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		entries := wt.IntoEntries()
		out := make([]wordEntryJSON, 0, len(entries))
		for _, ent := range entries {
			out = append(out, wordEntryJSON{Seen: ent.Seen, Word: ent.Word, Kind: ent.Kind.Code()})
		}
		writeJSON(w, http.StatusOK, tallyResponse{Entries: out})
	}
}

func handleLexicon(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		lexemes := e.Lookup(word)
		out := make([]lexemeJSON, 0, len(lexemes))
		for _, lx := range lexemes {
			out = append(out, toLexemeJSON(lx))
		}
		status := http.StatusOK
		if len(out) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lexiconResponse{Word: word, Lexemes: out})
	}
}

func handleKinds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		kinds := classifier.All()
		out := make([]kindJSON, 0, len(kinds))
		for _, k := range kinds {
			out = append(out, kindJSON{Code: k.Code()})
		}
		writeJSON(w, http.StatusOK, kindsResponse{Kinds: out})
	}
}

// ---- main -------------------------------------------------------------------

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var e *engine.Engine
	if cfg.LexiconPath != "" {
		f, err := os.Open(cfg.LexiconPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LexiconPath).Msg("open lexicon file")
		}
		defer f.Close()
		e, err = engine.NewFromReader(f)
		if err != nil {
			log.Fatal().Err(err).Msg("load lexicon")
		}
	} else {
		e = engine.New()
	}
	log.Info().Int("lexemes", e.Dict().Len()).Msg("lexicon ready")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tokenize", handleTokenize(e))
	mux.HandleFunc("/api/tally", handleTally(e))
	mux.HandleFunc("/api/lexicon", handleLexicon(e))
	mux.HandleFunc("/api/kinds", handleKinds())

	var handler http.Handler = mux
	if cfg.CORSEnabled {
		handler = cors.Default().Handler(mux)
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
