package main

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/textscreen/cmd/internal"
	"github.com/saylorsolutions/textscreen/pkg/obfuscate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(args ...string) (code int, stdout, stderr string) {
	var out, errOut strings.Builder
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func outputLines(t *testing.T, stdout string) (original, obfuscated, deobfuscated string) {
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	var ok bool
	original, ok = strings.CutPrefix(lines[0], "Original: ")
	require.True(t, ok)
	obfuscated, ok = strings.CutPrefix(lines[1], "Obfuscated: ")
	require.True(t, ok)
	deobfuscated, ok = strings.CutPrefix(lines[2], "Deobfuscated: ")
	require.True(t, ok)
	return original, obfuscated, deobfuscated
}

func TestRun_Demo(t *testing.T) {
	code, stdout, stderr := runCmd()
	assert.Equal(t, internal.ExitOK, code)
	assert.Empty(t, stderr)

	original, obfuscated, deobfuscated := outputLines(t, stdout)
	assert.Equal(t, sampleText, original)
	assert.Len(t, obfuscated, 3*len(sampleText))
	assert.Equal(t, sampleText, obfuscate.Deobfuscate(obfuscated))
	assert.Equal(t, sampleText, deobfuscated)
}

func TestRun_Text(t *testing.T) {
	code, stdout, _ := runCmd("some", "other", "text")
	assert.Equal(t, internal.ExitOK, code)
	original, _, deobfuscated := outputLines(t, stdout)
	assert.Equal(t, "some other text", original)
	assert.Equal(t, "some other text", deobfuscated)
}

func TestRun_DashText(t *testing.T) {
	code, stdout, stderr := runCmd("--", "-leading dash")
	require.Equal(t, internal.ExitOK, code, stderr)
	original, _, deobfuscated := outputLines(t, stdout)
	assert.Equal(t, "-leading dash", original)
	assert.Equal(t, "-leading dash", deobfuscated)

	code, stdout, stderr = runCmd("text", "-v")
	require.Equal(t, internal.ExitOK, code, stderr)
	original, _, _ = outputLines(t, stdout)
	assert.Equal(t, "text -v", original)
}

func TestRun_Seed(t *testing.T) {
	_, first, _ := runCmd("--seed", "abc", "repeat")
	_, second, stderr := runCmd("-v", "-s", "abc", "repeat")
	assert.Equal(t, first, second)
	assert.Contains(t, stderr, "seeded symbol source")
}

func TestRun_Usage(t *testing.T) {
	code, stdout, stderr := runCmd("--bogus")
	assert.Equal(t, internal.ExitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "USAGE:")

	code, stdout, _ = runCmd("-h")
	assert.Equal(t, internal.ExitOK, code)
	assert.Contains(t, stdout, "USAGE:")
}
