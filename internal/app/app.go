// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"strobemers-core/fasta"
	"strobemers-core/kmer"
	"strobemers-core/nuc"
	"strobemers-core/strobes"
	"strobemers/internal/cli"
	"strobemers/internal/version"
	"strobemers/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("strobemers")
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := showUsage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "strobemers version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg := strobes.Config{Order: opts.Order, K: opts.K, WMin: opts.WMin, WMax: opts.WMax}
	hasher := pickHasher(opts)

	var rows []writers.Row // buffered for json output only
	if opts.Output == "text" && opts.Header {
		if err := writers.WriteHeader(outw); err != nil {
			return writeCode(err, stderr)
		}
	}

	process := func(rec fasta.Record) error {
		seq := nuc.Normalize(rec.Seq)
		if err := nuc.Validate(seq); err != nil {
			return fmt.Errorf("%s: %w", recName(rec), err)
		}
		it, err := newIterator(seq, cfg, opts, hasher)
		if err != nil {
			// Mixed-length FASTA inputs routinely contain records shorter
			// than one selection chain; report and keep going.
			if errors.Is(err, strobes.ErrSequenceTooShort) {
				_, _ = fmt.Fprintf(stderr, "strobemers: skipping %s: %v\n", recName(rec), err)
				return nil
			}
			return fmt.Errorf("%s: %w", recName(rec), err)
		}
		for {
			h, ok := it.Next()
			if !ok {
				return nil
			}
			row := writers.Row{
				SeqID:     recName(rec),
				Policy:    opts.Policy,
				Positions: append([]int(nil), it.Indexes()...),
				Hash:      h,
			}
			if opts.Output == "json" {
				rows = append(rows, row)
				continue
			}
			if err := writers.WriteTSV(outw, row); err != nil {
				return err
			}
		}
	}

	if opts.Seq != "" {
		err = process(fasta.Record{ID: "seq1", Seq: []byte(opts.Seq)})
	} else {
		for _, path := range opts.SeqFiles {
			if err = fasta.StreamPathCtx(parent, path, process); err != nil {
				break
			}
		}
	}
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Output == "json" {
		if err := writers.WriteJSON(outw, rows); err != nil {
			return writeCode(err, stderr)
		}
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func pickHasher(opts cli.Options) kmer.Hasher {
	if opts.Hasher == cli.HasherXXH3 {
		return kmer.XX(opts.Seed)
	}
	return kmer.Default()
}

func newIterator(seq []byte, cfg strobes.Config, opts cli.Options, h kmer.Hasher) (strobes.Iterator, error) {
	if opts.Policy == cli.PolicyRand {
		rs, err := strobes.NewRandWithHasher(seq, cfg, h)
		if err != nil {
			return nil, err
		}
		if opts.Prime != 0 {
			if err := rs.SetPrime(opts.Prime); err != nil {
				return nil, err
			}
		}
		rs.SetWindowShrink(!opts.NoShrink)
		return rs, nil
	}
	ms, err := strobes.NewMinWithHasher(seq, cfg, h)
	if err != nil {
		return nil, err
	}
	ms.SetWindowShrink(!opts.NoShrink)
	return ms, nil
}

func recName(rec fasta.Record) string {
	if rec.ID == "" {
		return "unnamed"
	}
	return rec.ID
}

func writeCode(err error, stderr io.Writer) int {
	if writers.IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}
