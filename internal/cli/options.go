// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"strobemers/internal/version"
)

// Selection policies
const (
	PolicyMin  = "min"
	PolicyRand = "rand"
)

// Hasher choices
const (
	HasherNtHash = "nthash"
	HasherXXH3   = "xxh3"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string
	Seq      string

	// Strobemer parameters
	Policy string
	Order  int
	K      int
	WMin   int
	WMax   int

	// Hashing
	Hasher   string
	Seed     uint64
	Prime    uint64
	NoShrink bool

	// Output
	Output string
	Header bool // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: strobemer fingerprints over nucleotide sequences

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-') [*]")
	fs.StringVar(&opt.Seq, "seq", "", "inline nucleotide sequence (alternative to --sequences)")

	// Strobemer parameters
	fs.StringVar(&opt.Policy, "policy", PolicyMin, "strobe selection policy: min | rand [min]")
	fs.IntVar(&opt.Order, "order", 2, "strobemer order: 2 | 3 [2]")
	fs.IntVar(&opt.K, "strobe-len", 15, "strobe (k-mer) length [15]")
	fs.IntVar(&opt.WMin, "w-min", 20, "minimum window offset [20]")
	fs.IntVar(&opt.WMax, "w-max", 70, "maximum window offset (inclusive) [70]")

	// Hashing
	fs.StringVar(&opt.Hasher, "hasher", HasherNtHash, "k-mer hasher: nthash | xxh3 [nthash]")
	fs.Uint64Var(&opt.Seed, "seed", 0, "seed for the xxh3 hasher [0]")
	fs.Uint64Var(&opt.Prime, "prime", 0, "rand-policy prime, rounded to Mersenne form (0 = default 2^20-1) [0]")
	fs.BoolVar(&opt.NoShrink, "no-shrink", false, "stop at the first clipped terminal window instead of shrinking [false]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	switch {
	case len(opt.SeqFiles) > 0 && opt.Seq != "":
		return opt, errors.New("--sequences conflicts with --seq")
	case len(opt.SeqFiles) == 0 && opt.Seq == "":
		return opt, errors.New("provide --sequences or --seq")
	}
	if opt.Policy != PolicyMin && opt.Policy != PolicyRand {
		return opt, fmt.Errorf("invalid --policy %q", opt.Policy)
	}
	if opt.Order != 2 && opt.Order != 3 {
		return opt, errors.New("--order must be 2 or 3")
	}
	if opt.K < 1 {
		return opt, errors.New("--strobe-len must be >= 1")
	}
	if opt.WMin < 0 || opt.WMin > opt.WMax {
		return opt, errors.New("--w-min must satisfy 0 <= w-min <= w-max")
	}
	if opt.Hasher != HasherNtHash && opt.Hasher != HasherXXH3 {
		return opt, fmt.Errorf("invalid --hasher %q", opt.Hasher)
	}
	if opt.Prime != 0 && opt.Prime < 256 {
		return opt, errors.New("--prime must be 0 or >= 256")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
