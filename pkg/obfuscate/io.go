package obfuscate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// Writer extends io.WriteCloser, but also provides a way to reuse an Obfuscator with a different target.
// Close doesn't close the target, it only reports whether a partial UTF-8 sequence was left unwritten.
type Writer interface {
	io.WriteCloser
	// Reset will use the provided io.Writer and discard any partially written UTF-8 sequence.
	Reset(target io.Writer)
}

// Reader extends io.Reader, but also provides a way to reuse it with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and discard any buffered state.
	Reset(source io.Reader)
}

var _ Writer = (*writer)(nil)

type writer struct {
	target  io.Writer
	obf     *Obfuscator
	pending []byte
}

// NewWriter constructs a new Writer that obfuscates all text written to it before passing it to target.
// The Obfuscator used is configured with the given Opt values, like New.
func NewWriter(target io.Writer, opts ...Opt) (Writer, error) {
	obf, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		obf:    obf,
	}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	var (
		buf  bytes.Buffer
		data = in
		prev = w.pending
	)
	if len(w.pending) > 0 {
		data = append(w.pending, in...)
		w.pending = nil
	}
	buf.Grow(3 * len(data))
	for len(data) > 0 {
		if !utf8.FullRune(data) {
			w.pending = append([]byte(nil), data...)
			break
		}
		r, size := utf8.DecodeRune(data)
		w.obf.wrap(&buf, r)
		data = data[size:]
	}
	if buf.Len() == 0 {
		return len(in), nil
	}
	if _, err := w.target.Write(buf.Bytes()); err != nil {
		// Nothing from in is consumed, so the caller may retry the same bytes.
		w.pending = prev
		return 0, err
	}
	return len(in), nil
}

func (w *writer) Close() error {
	if len(w.pending) > 0 {
		n := len(w.pending)
		w.pending = nil
		return fmt.Errorf("%w: %d trailing bytes don't form a complete character", io.ErrUnexpectedEOF, n)
	}
	return nil
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.pending = nil
}

var _ Reader = (*reader)(nil)

type reader struct {
	source  *bufio.Reader
	pending bytes.Buffer
	err     error
}

// NewReader constructs a new Reader that deobfuscates the text read from source.
// As with Deobfuscate, 1 or 2 characters left over at the end of source are dropped.
func NewReader(source io.Reader) Reader {
	return &reader{
		source: bufio.NewReader(source),
	}
}

// middle reads the next group of three characters.
// A group cut short by the end of the source is reported as io.EOF.
func (r *reader) middle() (rune, error) {
	var mid rune
	for i := 0; i < 3; i++ {
		c, _, err := r.source.ReadRune()
		if err != nil {
			return 0, err
		}
		if i == 1 {
			mid = c
		}
	}
	return mid, nil
}

func (r *reader) Read(out []byte) (n int, err error) {
	if len(out) == 0 {
		return 0, nil
	}
	for r.err == nil && r.pending.Len() < len(out) {
		mid, err := r.middle()
		if err != nil {
			r.err = err
			break
		}
		r.pending.WriteRune(mid)
	}
	if r.pending.Len() == 0 {
		return 0, r.err
	}
	return r.pending.Read(out)
}

func (r *reader) Reset(source io.Reader) {
	r.source.Reset(source)
	r.pending.Reset()
	r.err = nil
}
