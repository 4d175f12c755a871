// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("strobemers-test")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "--sequences", "in.fa")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Policy != PolicyMin || opt.Order != 2 || opt.K != 15 || opt.WMin != 20 || opt.WMax != 70 {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
	if opt.Hasher != HasherNtHash || !opt.Header || opt.Output != "text" {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
}

func TestParseFullSet(t *testing.T) {
	opt, err := parse(t,
		"--sequences", "a.fa", "--sequences", "b.fa.gz",
		"--policy", "rand", "--order", "3",
		"--strobe-len", "9", "--w-min", "5", "--w-max", "12",
		"--hasher", "xxh3", "--seed", "7", "--prime", "4096",
		"--no-shrink", "--output", "json", "--no-header",
	)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if len(opt.SeqFiles) != 2 || opt.SeqFiles[1] != "b.fa.gz" {
		t.Fatalf("sequences = %v", opt.SeqFiles)
	}
	if opt.Policy != PolicyRand || opt.Order != 3 || opt.K != 9 || opt.WMin != 5 || opt.WMax != 12 {
		t.Fatalf("parameters = %+v", opt)
	}
	if opt.Hasher != HasherXXH3 || opt.Seed != 7 || opt.Prime != 4096 || !opt.NoShrink {
		t.Fatalf("hashing = %+v", opt)
	}
	if opt.Output != "json" || opt.Header {
		t.Fatalf("output = %+v", opt)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{},                                     // no input
		{"--sequences", "a.fa", "--seq", "ACGT"}, // conflicting input
		{"--seq", "ACGT", "--policy", "bogus"},
		{"--seq", "ACGT", "--order", "4"},
		{"--seq", "ACGT", "--strobe-len", "0"},
		{"--seq", "ACGT", "--w-min", "9", "--w-max", "3"},
		{"--seq", "ACGT", "--hasher", "md5"},
		{"--seq", "ACGT", "--prime", "100"},
		{"--seq", "ACGT", "--output", "xml"},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("ParseArgs(%v) accepted invalid input", argv)
		}
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
}

func TestParseVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-v")
	if err != nil || !opt.Version {
		t.Fatalf("version parse = %+v, %v", opt, err)
	}
}
