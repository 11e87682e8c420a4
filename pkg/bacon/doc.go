/*
Package bacon hides a short alphabetic message in the letter casing of a cover text, in the style of the Bacon cipher.

This is steganography, not encryption.
Anyone who knows the scheme can recover the message, the point is only that the stego text reads like the cover text.

# How it works:

Every ASCII letter in the cover text carries one bit: uppercase is 1, lowercase is 0.
All other characters pass through unchanged and carry nothing, so the bit capacity of a cover text is its count of ASCII letters (see Capacity).

The embedded bit sequence is a 16-bit big-endian header holding the number of characters in the message,
followed by 5 bits per message letter, where A through Z are ranks 0 through 25.
Letters of the cover text past the end of the bit sequence keep their original casing.

# Lossy behavior:

The scheme only has room for the 26 letters, so the following is part of the contract rather than a bug:
  - Decoded letters are always uppercase, so "hi" decodes as "HI".
  - Non-letter message characters are skipped in the payload, but still counted in the header.
    A message like "HI THERE" will need more payload bits than were embedded when decoding, and decoding will usually fail or return unrelated letters.
  - Messages longer than 65535 characters can't be described by the header and are rejected with ErrMessageTooLong.

# Errors:

Encode returns a *CapacityError when the cover text has too few letters.
Decode returns a *HeaderError or *PayloadError when the stego text is too short for the header or the declared payload,
and an error wrapping ErrInvalidSymbol when a 5-bit group decodes to a rank beyond 'Z'.
Use errors.Is with the sentinel errors in this package, or errors.As with the error types to get the bit counts.
*/
package bacon
