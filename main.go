package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gregLibert/bitquery/pkg/bits"
	"github.com/gregLibert/bitquery/pkg/tlv"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("bitquery failed")
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	typeName string
	value    string
	pos      int
	tlvHex   string
	debug    bool
}

func parseOptions(args []string, out io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("bitquery", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.typeName, "type", "uint8", "Integer type: "+strings.Join(typeNames(), ", "))
	fs.StringVar(&opts.value, "value", "", "Integer literal to inspect (0b, 0o, 0x prefixes accepted)")
	fs.IntVar(&opts.pos, "pos", -1, "Bit position to look up strictly (-1 for none)")
	fs.StringVar(&opts.tlvHex, "tlv", "", "Hex BER-TLV stream whose tag flags should be reported instead")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.tlvHex == "" && opts.value == "" {
		fs.PrintDefaults()
		return options{}, fmt.Errorf("one of -value or -tlv is required")
	}
	if opts.pos < -1 {
		return options{}, fmt.Errorf("invalid -pos %d: must be -1 or a bit position", opts.pos)
	}
	return opts, nil
}

// run executes one invocation and writes its report to out.
func run(args []string, out io.Writer, log zerolog.Logger) error {
	opts, err := parseOptions(args, out)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)

	if opts.tlvHex != "" {
		log.Debug().Str("tlv", opts.tlvHex).Msg("inspecting BER-TLV tag flags")
		return reportTLV(opts.tlvHex, out)
	}

	inspect, ok := inspectors[opts.typeName]
	if !ok {
		return fmt.Errorf("unsupported type %q (want one of %s)", opts.typeName, strings.Join(typeNames(), ", "))
	}

	log.Debug().Str("type", opts.typeName).Str("value", opts.value).Int("pos", opts.pos).Msg("inspecting value")
	return inspect(opts.value, opts.pos, out)
}

func reportTLV(rawHex string, out io.Writer) error {
	data, err := tlv.ParseHex(rawHex)
	if err != nil {
		return err
	}

	flags, err := tlv.Inspect(data)
	if err != nil {
		return fmt.Errorf("tag inspection failed: %w", err)
	}

	_, err = fmt.Fprintln(out, tlv.Describe(flags))
	return err
}

type inspector func(raw string, pos int, out io.Writer) error

var inspectors = map[string]inspector{
	"int8":    signedInspector[int8](8),
	"int16":   signedInspector[int16](16),
	"int32":   signedInspector[int32](32),
	"int64":   signedInspector[int64](64),
	"int":     signedInspector[int](0),
	"uint8":   unsignedInspector[uint8](8),
	"uint16":  unsignedInspector[uint16](16),
	"uint32":  unsignedInspector[uint32](32),
	"uint64":  unsignedInspector[uint64](64),
	"uint":    unsignedInspector[uint](0),
	"uintptr": unsignedInspector[uintptr](0),
}

func typeNames() []string {
	return []string{"int8", "int16", "int32", "int64", "int", "uint8", "uint16", "uint32", "uint64", "uint", "uintptr"}
}

// signedInspector parses literals at bitSize (0 means the native int size) before reporting.
func signedInspector[T constraints.Signed](bitSize int) inspector {
	return func(raw string, pos int, out io.Writer) error {
		n, err := strconv.ParseInt(raw, 0, bitSize)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		return report(T(n), pos, out)
	}
}

// unsignedInspector parses literals at bitSize (0 means the native uint size) before reporting.
func unsignedInspector[T constraints.Unsigned](bitSize int) inspector {
	return func(raw string, pos int, out io.Writer) error {
		n, err := strconv.ParseUint(raw, 0, bitSize)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		return report(T(n), pos, out)
	}
}

func report[T constraints.Integer](v T, pos int, out io.Writer) error {
	if _, err := fmt.Fprintln(out, bits.Describe(v)); err != nil {
		return err
	}
	if pos < 0 {
		return nil
	}

	set, err := bits.Lookup(v, uint(pos))
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	state := "clear"
	if set {
		state = "set"
	}
	_, err = fmt.Fprintf(out, "    - Bit %d: %s\n", pos, state)
	return err
}
