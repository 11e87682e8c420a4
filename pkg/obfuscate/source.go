package obfuscate

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source provides the random symbol selection used by an Obfuscator.
// IntN must return a uniformly distributed value in [0, n), and may panic if n <= 0.
//
// A *rand.Rand from math/rand/v2 satisfies this interface.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int {
	return f(n)
}

// DefaultSource uses the process-wide math/rand/v2 generator, which is safe for concurrent use.
var DefaultSource Source = SourceFunc(rand.IntN)

var _ Source = (*keyedSource)(nil)

// keyedSource produces a deterministic sequence of values from a chacha20 keystream.
type keyedSource struct {
	stream *chacha20.Cipher
	buf    [64]byte
	pos    int
}

// NewKeyedSource creates a deterministic Source from the given seed.
// The same seed will always produce the same sequence of values, which makes obfuscated output reproducible.
// The returned Source is not safe for concurrent use.
func NewKeyedSource(seed []byte) (Source, error) {
	if len(seed) == 0 {
		return nil, errors.New("cannot use empty seed")
	}
	key := blake2b.Sum256(seed)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keystream: %w", err)
	}
	s := &keyedSource{stream: stream}
	s.pos = len(s.buf)
	return s, nil
}

func (s *keyedSource) fill(out []byte) {
	for i := range out {
		if s.pos == len(s.buf) {
			clear(s.buf[:])
			s.stream.XORKeyStream(s.buf[:], s.buf[:])
			s.pos = 0
		}
		out[i] = s.buf[s.pos]
		s.pos++
	}
}

func (s *keyedSource) IntN(n int) int {
	if n <= 0 || uint64(n) > 1<<32 {
		panic(fmt.Sprintf("invalid argument to IntN: %d", n))
	}
	if n == 1 {
		return 0
	}
	var (
		bound = uint64(n)
		limit = (1 << 32) - (1<<32)%bound
		word  [4]byte
	)
	// Rejection sampling keeps the distribution uniform when n doesn't divide 2^32.
	for {
		s.fill(word[:])
		v := uint64(binary.BigEndian.Uint32(word[:]))
		if v < limit {
			return int(v % bound)
		}
	}
}
