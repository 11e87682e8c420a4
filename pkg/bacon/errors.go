package bacon

import (
	"errors"
	"fmt"
)

var (
	ErrCapacity       = errors.New("insufficient cover capacity")
	ErrHeader         = errors.New("insufficient bits for header")
	ErrPayload        = errors.New("insufficient bits for payload")
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrBitCount       = errors.New("invalid bit count")
	ErrMessageTooLong = errors.New("message too long")
)

// CapacityError is returned by Encode when the cover text doesn't have enough letters to carry the message.
type CapacityError struct {
	Available int // Letters in the cover text
	Required  int // Bits needed for the header and payload
	Symbols   int // Message letters in the payload
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: cover has only %d letters but needs %d (%d+%d×%d)",
		ErrCapacity, e.Available, e.Required, HeaderBits, e.Symbols, SymbolBits)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// HeaderError is returned by Decode when the stego text has fewer bits than the length header needs.
type HeaderError struct {
	Available int
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: stego text has only %d bits; need at least %d", ErrHeader, e.Available, HeaderBits)
}

func (e *HeaderError) Unwrap() error {
	return ErrHeader
}

// PayloadError is returned by Decode when the header declares a longer message than the stego text can hold.
type PayloadError struct {
	Available  int
	Required   int
	MessageLen int // Length declared in the header
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: stego text has %d bits but needs %d (%d+%d×%d)",
		ErrPayload, e.Available, e.Required, HeaderBits, e.MessageLen, SymbolBits)
}

func (e *PayloadError) Unwrap() error {
	return ErrPayload
}
