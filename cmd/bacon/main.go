package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/textscreen/cmd/internal"
	"github.com/saylorsolutions/textscreen/pkg/bacon"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// version is set at build time.
var version = "dev"

func main() {
	internal.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		helpFlag    bool
		verboseFlag bool
		formatFlag  string
	)
	flags := flag.NewFlagSet("bacon", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(false)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Emits debug diagnostics to stderr.")
	flags.StringVarP(&formatFlag, "format", "f", "text", "Output format for the capacity command, one of text, yaml, or json.")
	usage := func(w io.Writer) {
		_, _ = fmt.Fprintf(w, `
bacon hides a message in the letter casing of a cover text, and recovers it again.
Each letter of the cover text carries one bit (uppercase is 1, lowercase is 0), and every other character is left as-is.
A message needs 16 letters for its length, plus 5 letters for each of its own letters.

USAGE:
    bacon [FLAGS] encode MESSAGE COVER_TEXT
    bacon [FLAGS] decode STEGO_TEXT
    bacon [FLAGS] capacity MESSAGE COVER_TEXT

Flags must come before the command, so MESSAGE, COVER_TEXT, and STEGO_TEXT may start with '-'.

COMMANDS:
    encode      Prints COVER_TEXT with MESSAGE embedded in its casing.
    decode      Prints the message embedded in STEGO_TEXT, always in uppercase.
    capacity    Reports how many letters MESSAGE needs, and whether COVER_TEXT has enough.

Only the letters A-Z are carried. Any other message characters are dropped.

FLAGS:
%s
VERSION: %s

EXIT CODES:
    0    Success
    1    Invalid usage
    2    The cover text is too small, or the stego text can't be decoded
`, flags.FlagUsages(), version)
	}

	if len(args) == 0 {
		usage(stderr)
		return internal.ExitUsage
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

	switch cmd := flags.Arg(0); {
	case cmd == "encode" && flags.NArg() == 3:
		return encode(stdout, log, flags.Arg(1), flags.Arg(2))
	case cmd == "decode" && flags.NArg() == 2:
		return decode(stdout, log, flags.Arg(1))
	case cmd == "capacity" && flags.NArg() == 3:
		return capacity(stdout, stderr, log, formatFlag, flags.Arg(1), flags.Arg(2))
	default:
		usage(stderr)
		return internal.ExitUsage
	}
}

func encode(stdout io.Writer, log *logrus.Logger, message, cover string) int {
	log.WithFields(logrus.Fields{
		"required":  bacon.Required(message),
		"available": bacon.Capacity(cover),
	}).Debug("Encoding message")
	stego, err := bacon.Encode(message, cover)
	if err != nil {
		log.Errorf("Failed to encode message: %v", err)
		return internal.ExitFailure
	}
	internal.Echo(stdout, "%s", stego)
	return internal.ExitOK
}

func decode(stdout io.Writer, log *logrus.Logger, stego string) int {
	log.WithField("available", bacon.Capacity(stego)).Debug("Decoding message")
	msg, err := bacon.Decode(stego)
	if err != nil {
		var (
			headerErr  *bacon.HeaderError
			payloadErr *bacon.PayloadError
		)
		switch {
		case errors.As(err, &headerErr):
			log.WithField("bits", headerErr.Available).Debug("Stego text is too short for a length header")
		case errors.As(err, &payloadErr):
			log.WithField("declared", payloadErr.MessageLen).Debug("Stego text is too short for the declared message")
		}
		log.Errorf("Failed to decode message: %v", err)
		internal.Echo(stdout, "")
		return internal.ExitFailure
	}
	internal.Echo(stdout, "%s", msg)
	return internal.ExitOK
}

func capacity(stdout, stderr io.Writer, log *logrus.Logger, format, message, cover string) int {
	report := bacon.Check(message, cover)
	log.WithField("fits", report.Fits).Debug("Checked capacity")

	switch format {
	case "text":
		internal.Echo(stdout, "Message length: %d", report.MessageLength)
		internal.Echo(stdout, "Encoded letters: %d", report.Symbols)
		internal.Echo(stdout, "Required bits: %d", report.RequiredBits)
		internal.Echo(stdout, "Available bits: %d", report.AvailableBits)
		internal.Echo(stdout, "Fits: %t", report.Fits)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			log.Errorf("Failed to render report: %v", err)
			return internal.ExitFailure
		}
		_, _ = stdout.Write(data)
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Errorf("Failed to render report: %v", err)
			return internal.ExitFailure
		}
		internal.Echo(stdout, "%s", data)
	default:
		internal.Echo(stderr, "Unknown format '%s', expected one of text, yaml, or json", format)
		return internal.ExitUsage
	}
	if !report.Fits {
		return internal.ExitFailure
	}
	return internal.ExitOK
}
