package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.BallInc != 1 {
		t.Fatalf("BallInc = %d, want 1", opts.BallInc)
	}
	if opts.Boundary != physics.BoundaryExact || opts.Color != config.ColorRGB {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.Seed == 0 {
		t.Fatalf("expected a time based seed")
	}
}

func TestParseOptionsBallInc(t *testing.T) {
	opts, err := parseOptions([]string{"-seed", "7", "-boundary", "truncate", "25"})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.BallInc != 25 || opts.Seed != 7 || opts.Boundary != physics.BoundaryTruncate {
		t.Fatalf("got %+v", opts)
	}
}

func TestParseOptionsRejects(t *testing.T) {
	tests := [][]string{
		{"many"},
		{"1.5"},
		{"-3"},
		{"1", "2"},
		{"-boundary", "round"},
		{"-color", "cmyk"},
	}
	for _, args := range tests {
		if _, err := parseOptionsQuiet(args); err == nil {
			t.Fatalf("parseOptions(%q) succeeded, want error", args)
		}
	}
}

func TestParseOptionsHelp(t *testing.T) {
	_, err := parseOptionsQuiet([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

// parseOptionsQuiet swallows usage output printed by the flag set.
func parseOptionsQuiet(args []string) (config.Options, error) {
	saved := usageOutput
	usageOutput = io.Discard
	defer func() { usageOutput = saved }()
	return parseOptions(args)
}
