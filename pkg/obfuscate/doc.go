/*
Package obfuscate provides a trivially reversible character wrapping scheme for strings and streams.

Note that this is NOT encryption, and it doesn't even hide the original characters.
Every character of the input is kept in place, and is surrounded by two symbols drawn at random from a small alphabet.
This is useful for making plain text values (like environment variable names) harder to grep for or recognize at a glance, and nothing more.

# How it works:

For each character (Unicode scalar value) of the input, three characters are emitted:
a random symbol from the alphabet, the original character, then another independently drawn random symbol.
The default alphabet is DefaultAlphabet, which is ?, * and \.

Deobfuscation takes every consecutive group of three characters and keeps the middle one.
The outer symbols are not validated, so any input is accepted, and a trailing group of fewer than three characters is silently dropped.
For every string s, Deobfuscate(Obfuscate(s)) == s regardless of the random symbols chosen.

# Randomness:

Symbols are drawn from a Source, which defaults to the process-wide math/rand/v2 generator (DefaultSource).
No security property depends on the Source, so a non-cryptographic generator is fine.
Use WithSource to inject a different Source, like one created with NewKeyedSource, to get reproducible output for a given seed.
*/
package obfuscate
