package tokenizer

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by the character splitter when the buffered
// bytes can never form a valid UTF-8 encoding.
var ErrInvalidUTF8 = errors.New("tokenizer: invalid UTF-8")

// charSplitter decodes an io.Reader's bytes into runes one at a time,
// reading a single byte at a time and buffering only the partial
// sequence of the rune currently in progress.
type charSplitter struct {
	r   io.Reader
	buf []byte
	one [1]byte
}

func newCharSplitter(r io.Reader) *charSplitter {
	return &charSplitter{r: r}
}

// next returns the next decoded rune, io.EOF at a clean end of input, or
// ErrInvalidUTF8 if the buffered bytes form an ill-formed sequence.
func (cs *charSplitter) next() (rune, error) {
	for {
		n, err := cs.r.Read(cs.one[:])
		if n == 1 {
			cs.buf = append(cs.buf, cs.one[0])
			if utf8.FullRune(cs.buf) {
				r, size := utf8.DecodeRune(cs.buf)
				if r == utf8.RuneError && size <= 1 {
					return 0, ErrInvalidUTF8
				}
				cs.buf = cs.buf[size:]
				return r, nil
			}
			if len(cs.buf) >= utf8.UTFMax {
				return 0, ErrInvalidUTF8
			}
			continue
		}
		if err != nil {
			if err == io.EOF {
				if len(cs.buf) > 0 {
					return 0, ErrInvalidUTF8
				}
				return 0, io.EOF
			}
			return 0, err
		}
	}
}
