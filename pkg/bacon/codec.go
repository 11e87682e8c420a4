package bacon

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Capacity returns the number of bits the cover text can carry, which is its count of ASCII letters.
func Capacity(cover string) int {
	var n int
	for i := 0; i < len(cover); i++ {
		if isLetter(cover[i]) {
			n++
		}
	}
	return n
}

// Required returns the number of cover letters needed to embed the message.
// Only ASCII letters in the message contribute to the payload.
func Required(message string) int {
	return HeaderBits + SymbolBits*Capacity(message)
}

// Report describes whether a message fits in a cover text.
type Report struct {
	MessageLength int  `json:"messageLength" yaml:"messageLength"`
	Symbols       int  `json:"symbols" yaml:"symbols"`
	RequiredBits  int  `json:"requiredBits" yaml:"requiredBits"`
	AvailableBits int  `json:"availableBits" yaml:"availableBits"`
	Fits          bool `json:"fits" yaml:"fits"`
}

// Check reports the capacity needed to embed the message against what the cover text provides.
func Check(message, cover string) Report {
	r := Report{
		MessageLength: utf8.RuneCountInString(message),
		Symbols:       Capacity(message),
		RequiredBits:  Required(message),
		AvailableBits: Capacity(cover),
	}
	r.Fits = r.MessageLength <= MaxMessageLength && r.AvailableBits >= r.RequiredBits
	return r
}

// MessageBits returns the full bit sequence that Encode embeds for the message: the length header followed by the payload.
func MessageBits(message string) (Bits, error) {
	length := utf8.RuneCountInString(message)
	if length > MaxMessageLength {
		return nil, fmt.Errorf("%w: %d characters exceeds the maximum of %d", ErrMessageTooLong, length, MaxMessageLength)
	}
	h := header{length: uint16(length)}
	bits, err := h.bits()
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	for _, c := range message {
		if sym, ok := CharToBits(c); ok {
			bits = append(bits, sym...)
		}
	}
	return bits, nil
}

// Encode embeds the message in the casing of the cover text and returns the stego text.
// A *CapacityError is returned if the cover text has fewer letters than Required(message), and nothing is embedded.
func Encode(message, cover string) (string, error) {
	bits, err := MessageBits(message)
	if err != nil {
		return "", err
	}
	available := Capacity(cover)
	if available < len(bits) {
		return "", &CapacityError{
			Available: available,
			Required:  len(bits),
			Symbols:   (len(bits) - HeaderBits) / SymbolBits,
		}
	}

	stego := []byte(cover)
	next := 0
	for i := 0; i < len(stego) && next < len(bits); i++ {
		if !isLetter(stego[i]) {
			continue
		}
		if bits[next] == 1 {
			stego[i] = toUpper(stego[i])
		} else {
			stego[i] = toLower(stego[i])
		}
		next++
	}
	return string(stego), nil
}

// StegoBits returns the bit carried by each ASCII letter of the stego text.
func StegoBits(stego string) Bits {
	bits := make(Bits, 0, len(stego))
	for i := 0; i < len(stego); i++ {
		c := stego[i]
		if !isLetter(c) {
			continue
		}
		if isUpper(c) {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits
}

// Decode recovers a message embedded with Encode.
// The returned message is always uppercase.
// An empty string is returned along with the error on failure, see the package documentation for the error types.
func Decode(stego string) (string, error) {
	bits := StegoBits(stego)
	var h header
	if err := h.readBits(bits); err != nil {
		return "", err
	}
	length := int(h.length)
	required := HeaderBits + SymbolBits*length
	if len(bits) < required {
		return "", &PayloadError{
			Available:  len(bits),
			Required:   required,
			MessageLen: length,
		}
	}

	var msg strings.Builder
	msg.Grow(length)
	for i := HeaderBits; i < required; i += SymbolBits {
		c, err := BitsToChar(bits[i : i+SymbolBits])
		if err != nil {
			return "", fmt.Errorf("symbol %d: %w", (i-HeaderBits)/SymbolBits, err)
		}
		msg.WriteRune(c)
	}
	return msg.String(), nil
}
