package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative ball increment", func(o *Options) { o.BallInc = -1 }},
		{"zero width", func(o *Options) { o.WindowWidth = 0 }},
		{"zero min radius", func(o *Options) { o.MinRadius = 0 }},
		{"empty radius range", func(o *Options) { o.MaxRadius = o.MinRadius }},
		{"inverted speed range", func(o *Options) { o.MinSpeed, o.MaxSpeed = 10, 5 }},
		{"unknown color mode", func(o *Options) { o.Color = "cmyk" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Default()
			tc.mutate(&o)
			err := o.Validate()
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestZeroBallIncIsAllowed(t *testing.T) {
	o := Default()
	o.BallInc = 0
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
