package bacon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	bin "github.com/saylorsolutions/binmap"
)

const (
	HeaderBits       = 16
	SymbolBits       = 5
	MaxMessageLength = math.MaxUint16

	alphabetSize = 26
)

// Bits is a sequence of bit values, each either 0 or 1, most significant first.
type Bits []uint8

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// CharToBits returns the 5-bit rank of an ASCII letter, ignoring case.
// The second return value is false for anything that isn't an ASCII letter.
func CharToBits(c rune) (Bits, bool) {
	if c < 0 || c > 'z' || !isLetter(byte(c)) {
		return nil, false
	}
	rank := toUpper(byte(c)) - 'A'
	bits := make(Bits, SymbolBits)
	for i := range bits {
		bits[i] = (rank >> (SymbolBits - 1 - i)) & 1
	}
	return bits, true
}

// BitsToChar returns the uppercase letter for exactly 5 bits.
// Ranks 26 through 31 have no letter, and return an error wrapping ErrInvalidSymbol.
func BitsToChar(bits Bits) (rune, error) {
	if len(bits) != SymbolBits {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBitCount, len(bits), SymbolBits)
	}
	var rank uint8
	for _, b := range bits {
		rank = rank<<1 | b&1
	}
	if rank >= alphabetSize {
		return 0, fmt.Errorf("%w: rank %d is past 'Z'", ErrInvalidSymbol, rank)
	}
	return rune('A' + rank), nil
}

// header is the fixed width message length prefix.
type header struct {
	length uint16
}

func (h *header) mapper() bin.Mapper {
	return bin.Int(&h.length)
}

func (h *header) bits() (Bits, error) {
	var buf bytes.Buffer
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return bytesToBits(buf.Bytes()), nil
}

func (h *header) readBits(bits Bits) error {
	if len(bits) < HeaderBits {
		return &HeaderError{Available: len(bits)}
	}
	return h.mapper().Read(bytes.NewReader(bitsToBytes(bits[:HeaderBits])), binary.BigEndian)
}

func bytesToBits(data []byte) Bits {
	bits := make(Bits, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits into bytes, most significant first. A trailing partial byte is zero padded.
func bitsToBytes(bits Bits) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		data[i/8] |= (b & 1) << (7 - i%8)
	}
	return data
}
