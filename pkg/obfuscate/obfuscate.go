package obfuscate

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultAlphabet is the set of symbols used to wrap characters when no alternative is given with WithAlphabet.
const DefaultAlphabet = `?*\`

// Obfuscator wraps each character of its input with randomly selected symbols.
// An Obfuscator is safe for concurrent use if its Source is.
type Obfuscator struct {
	src      Source
	alphabet []rune
}

// Opt operates on an Obfuscator during construction in New.
// If any Opt returns an error, then construction stops and the error is returned.
type Opt = func(*Obfuscator) error

// WithSource overrides DefaultSource for random symbol selection.
func WithSource(src Source) Opt {
	return func(o *Obfuscator) error {
		if src == nil {
			return errors.New("cannot use a nil source")
		}
		o.src = src
		return nil
	}
}

// WithAlphabet overrides DefaultAlphabet.
// Each character of the given string is a candidate symbol, and duplicates make a symbol proportionally more likely.
func WithAlphabet(alphabet string) Opt {
	return func(o *Obfuscator) error {
		if utf8.RuneCountInString(alphabet) == 0 {
			return errors.New("cannot use an empty alphabet")
		}
		o.alphabet = []rune(alphabet)
		return nil
	}
}

// New creates an Obfuscator configured with zero or more Opt.
// By default, symbols are drawn from DefaultAlphabet using DefaultSource.
func New(opts ...Opt) (*Obfuscator, error) {
	o := &Obfuscator{
		src:      DefaultSource,
		alphabet: defaultAlphabet,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
}

func (o *Obfuscator) symbol() rune {
	return o.alphabet[o.src.IntN(len(o.alphabet))]
}

func (o *Obfuscator) wrap(out runeWriter, r rune) {
	_, _ = out.WriteRune(o.symbol())
	_, _ = out.WriteRune(r)
	_, _ = out.WriteRune(o.symbol())
}

// Obfuscate returns the input with every character wrapped between two random symbols.
// The output always has exactly three times as many characters as the input.
// Two values are drawn from the Source for each input character.
func (o *Obfuscator) Obfuscate(input string) string {
	var out strings.Builder
	out.Grow(3 * len(input))
	for _, r := range input {
		o.wrap(&out, r)
	}
	return out.String()
}

var defaultAlphabet = []rune(DefaultAlphabet)

// Obfuscate wraps every character of the input with symbols from DefaultAlphabet, selected with DefaultSource.
func Obfuscate(input string) string {
	o := Obfuscator{
		src:      DefaultSource,
		alphabet: defaultAlphabet,
	}
	return o.Obfuscate(input)
}

// Deobfuscate returns the middle character of each consecutive group of three characters in the input.
// The surrounding symbols are discarded without being checked, and 1 or 2 trailing characters are dropped.
func Deobfuscate(obfuscated string) string {
	runes := []rune(obfuscated)
	var out strings.Builder
	out.Grow(len(obfuscated) / 3)
	for i := 0; i+2 < len(runes); i += 3 {
		out.WriteRune(runes[i+1])
	}
	return out.String()
}
