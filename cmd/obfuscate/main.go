package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/textscreen/cmd/internal"
	"github.com/saylorsolutions/textscreen/pkg/obfuscate"
	flag "github.com/spf13/pflag"
)

const sampleText = "env:TestVariable123!"

// version is set at build time.
var version = "dev"

func main() {
	internal.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		helpFlag    bool
		verboseFlag bool
		seedFlag    string
	)
	flags := flag.NewFlagSet("obfuscate", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(false)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Emits debug diagnostics to stderr.")
	flags.StringVarP(&seedFlag, "seed", "s", "", "Seeds symbol selection so the same TEXT and seed always produce the same output.")
	usage := func(w io.Writer) {
		_, _ = fmt.Fprintf(w, `
obfuscate demonstrates wrapping each character of TEXT between two random symbols from the set ?, *, and \, and reversing it again.
This is NOT encryption, the original characters are still there for anyone to read.

USAGE:  obfuscate [FLAGS] [--] [TEXT...]

ARGS:
    TEXT is optional, and defaults to %q. Multiple arguments are joined with spaces.
    Use -- before TEXT that starts with '-'.

FLAGS:
%s
VERSION: %s
`, sampleText, flags.FlagUsages(), version)
	}

	if err := flags.Parse(args); err != nil {
		usage(stderr)
		internal.Echo(stderr, "Error parsing flags: %v", err)
		return internal.ExitUsage
	}
	if helpFlag {
		usage(stdout)
		return internal.ExitOK
	}
	log := internal.NewLogger(stderr, verboseFlag)

	text := sampleText
	if flags.NArg() > 0 {
		text = strings.Join(flags.Args(), " ")
	}

	var opts []obfuscate.Opt
	if len(seedFlag) > 0 {
		src, err := obfuscate.NewKeyedSource([]byte(seedFlag))
		if err != nil {
			log.Errorf("Failed to create seeded source: %v", err)
			return internal.ExitFailure
		}
		log.Debug("Using seeded symbol source")
		opts = append(opts, obfuscate.WithSource(src))
	}
	obf, err := obfuscate.New(opts...)
	if err != nil {
		log.Errorf("Failed to create obfuscator: %v", err)
		return internal.ExitFailure
	}

	obfuscated := obf.Obfuscate(text)
	internal.Echo(stdout, "Original: %s", text)
	internal.Echo(stdout, "Obfuscated: %s", obfuscated)
	internal.Echo(stdout, "Deobfuscated: %s", obfuscate.Deobfuscate(obfuscated))
	return internal.ExitOK
}
