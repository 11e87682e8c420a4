package obfuscate

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscate_RoundTrip(t *testing.T) {
	tests := map[string]string{
		"Empty":      "",
		"Sample":     "env:TestVariable123!",
		"Symbols":    `?*\??**\\`,
		"Multi-byte": "héllo, 世界 🌍",
		"Whitespace": " \t\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			obfuscated := Obfuscate(input)
			t.Log("Obfuscated:", obfuscated)
			assert.Equal(t, 3*utf8.RuneCountInString(input), utf8.RuneCountInString(obfuscated))
			assert.Equal(t, input, Deobfuscate(obfuscated))
		})
	}
}

func TestObfuscate_Structure(t *testing.T) {
	const input = "env:TestVariable123!"
	original := []rune(input)
	obfuscated := []rune(Obfuscate(input))
	require.Len(t, obfuscated, 3*len(original))

	for i, r := range obfuscated {
		switch i % 3 {
		case 1:
			assert.Equal(t, original[i/3], r)
		default:
			assert.Contains(t, DefaultAlphabet, string(r))
		}
	}
}

func TestObfuscate_Empty(t *testing.T) {
	assert.Equal(t, "", Obfuscate(""))
	assert.Equal(t, "", Deobfuscate(""))
}

func TestObfuscator_Deterministic(t *testing.T) {
	newObf := func() *Obfuscator {
		src, err := NewKeyedSource([]byte("fixed seed"))
		require.NoError(t, err)
		obf, err := New(WithSource(src))
		require.NoError(t, err)
		return obf
	}
	a := newObf().Obfuscate("repeatable")
	b := newObf().Obfuscate("repeatable")
	assert.Equal(t, a, b)
	assert.Equal(t, "repeatable", Deobfuscate(a))

	pcg := rand.New(rand.NewPCG(7, 11))
	obf, err := New(WithSource(pcg))
	require.NoError(t, err)
	assert.Equal(t, "repeatable", Deobfuscate(obf.Obfuscate("repeatable")))
}

func TestObfuscate_DefaultSourceOverride(t *testing.T) {
	orig := DefaultSource
	defer func() {
		DefaultSource = orig
	}()
	DefaultSource = SourceFunc(func(n int) int {
		return 0
	})

	assert.Equal(t, "?a??b??c?", Obfuscate("abc"))
	obf, err := New()
	require.NoError(t, err)
	assert.Equal(t, "?a??b??c?", obf.Obfuscate("abc"))
}

func TestObfuscator_DrawsPerCharacter(t *testing.T) {
	var draws int
	src := SourceFunc(func(n int) int {
		draws++
		return 0
	})
	obf, err := New(WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, "?a??b??c?", obf.Obfuscate("abc"))
	assert.Equal(t, 6, draws)
}

func TestObfuscator_Alphabet(t *testing.T) {
	obf, err := New(WithAlphabet("#"))
	require.NoError(t, err)
	assert.Equal(t, "#x##y#", obf.Obfuscate("xy"))

	obf, err = New(WithAlphabet("«»"))
	require.NoError(t, err)
	out := obf.Obfuscate("text")
	assert.Equal(t, 12, utf8.RuneCountInString(out))
	assert.Equal(t, "text", Deobfuscate(out))
}

func TestNew_Neg(t *testing.T) {
	_, err := New(WithAlphabet(""))
	assert.Error(t, err)
	_, err = New(WithSource(nil))
	assert.Error(t, err)
}

func TestDeobfuscate(t *testing.T) {
	tests := map[string]struct {
		given    string
		expected string
	}{
		"Unchecked symbols":  {given: "abcdef", expected: "be"},
		"One trailing char":  {given: "?a?x", expected: "a"},
		"Two trailing chars": {given: "?a?xy", expected: "a"},
		"Too short":          {given: "ab", expected: ""},
		"Multi-byte middle":  {given: "*世\\", expected: "世"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Deobfuscate(tc.given))
		})
	}
}

func BenchmarkObfuscate(b *testing.B) {
	input := strings.Repeat("env:TestVariable123!", 50)
	for i := 0; i < b.N; i++ {
		_ = Obfuscate(input)
	}
}
