package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/texthuff"
)

const progName = "texthuff"
const usageMessageRaw = `
Usage: texthuff [-d|-debug] SUBCOMMAND...

Subcommands:
  compress [-o OUT] [-table TABLE] [-no-trim] FILE
    Compress the text file FILE.  The payload is written to OUT
    (default: FILE with its extension replaced by ".bin") and its
    code table to TABLE (default: OUT + ".codes.json").  Trailing
    white space is stripped from the text unless -no-trim is given.

  decompress [-o OUT] [-table TABLE] FILE
    Decompress the payload FILE using the code table in TABLE
    (default: FILE + ".codes.json").  The text is written to OUT
    (default: FILE with its extension replaced by "_decompressed.txt").
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	log.Errorf("%v", err)
	if errors.Is(err, huffman.ErrSourceNotFound) {
		os.Exit(66)
	}
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// newFlagSet returns a FlagSet that reports problems as errors instead of
// printing its own usage text.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(&nullWriter{})
	return fs
}

// usageError is a problem with the command line rather than with the files
// it names.
type usageError struct {
	detail string
}

func (e usageError) Error() string {
	return e.detail
}

func usageErrorOf(detailFmt string, detailArgs ...interface{}) error {
	return usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	argErr := fs.Parse(args)
	if argErr == flag.ErrHelp {
		return argErr
	} else if argErr != nil {
		return usageError{argErr.Error()}
	}
	return nil
}

func singleArg(fs *flag.FlagSet, expected string) (string, error) {
	switch fs.NArg() {
	case 0:
		return "", usageErrorOf("not enough arguments; expected %s", expected)
	case 1:
		return fs.Arg(0), nil
	default:
		return "", usageErrorOf("too many arguments at %d (\"%s\")", 1, fs.Arg(1))
	}
}

// command is one parsed subcommand, ready to run.
type command struct {
	name string
	path string
	opts huffman.FileOptions
}

func parseCompressArgs(args []string) (command, error) {
	cmd := command{name: "compress"}
	var noTrim bool
	fs := newFlagSet(cmd.name)
	fs.StringVar(&cmd.opts.OutputPath, "o", "", "")
	fs.StringVar(&cmd.opts.TablePath, "table", "", "")
	fs.BoolVar(&noTrim, "no-trim", false, "")
	if err := parseFlags(fs, args); err != nil {
		return command{}, err
	}
	path, err := singleArg(fs, "FILE")
	if err != nil {
		return command{}, err
	}
	cmd.path = path
	cmd.opts.TrimTrailingSpace = !noTrim
	return cmd, nil
}

func parseDecompressArgs(args []string) (command, error) {
	cmd := command{name: "decompress"}
	fs := newFlagSet(cmd.name)
	fs.StringVar(&cmd.opts.OutputPath, "o", "", "")
	fs.StringVar(&cmd.opts.TablePath, "table", "", "")
	if err := parseFlags(fs, args); err != nil {
		return command{}, err
	}
	path, err := singleArg(fs, "FILE")
	if err != nil {
		return command{}, err
	}
	cmd.path = path
	return cmd, nil
}

// parseArgs parses the whole command line, excluding the program name.
func parseArgs(args []string) (cmd command, debugLogging bool, err error) {
	ourFlags := newFlagSet(progName)

	// Usage strings are hardcoded above.

	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	if err := parseFlags(ourFlags, args); err != nil {
		return command{}, false, err
	}

	if ourFlags.NArg() == 0 {
		return command{}, false, usageErrorOf("not enough arguments; expected SUBCOMMAND")
	}

	subArgs := ourFlags.Args()[1:]
	switch name := ourFlags.Arg(0); name {
	case "compress":
		cmd, err = parseCompressArgs(subArgs)
	case "decompress":
		cmd, err = parseDecompressArgs(subArgs)
	default:
		err = usageErrorOf("unknown subcommand \"%s\"", name)
	}
	return cmd, debugLogging, err
}

// run executes cmd and writes the resulting file name to w.
func run(cmd command, w io.Writer) error {
	switch cmd.name {
	case "compress":
		outPath, err := huffman.CompressFile(cmd.path, cmd.opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Compressed file is: %s\n", outPath)
	case "decompress":
		outPath, err := huffman.DecompressFile(cmd.path, cmd.opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Decompressed file is: %s\n", outPath)
	default:
		return usageErrorOf("unknown subcommand \"%s\"", cmd.name)
	}
	return nil
}

func main() {
	startLogging()

	cmd, debugLogging, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if err != nil {
		usageErrorf("%s", err.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(cmd, os.Stdout); err != nil {
		exitError(err)
	}
}
