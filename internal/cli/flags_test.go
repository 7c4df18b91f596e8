package cli

import (
	"slices"
	"testing"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/contrast/internal/contrast"
)

func TestAlgorithmFlag(t *testing.T) {
	tests := []struct {
		name     string
		allowAll bool
		args     []string
		want     []contrast.Algorithm
		wantErr  bool
	}{
		{
			name: "unset falls back",
			want: []contrast.Algorithm{contrast.AlgorithmMichelson},
		},
		{
			name: "long form",
			args: []string{"--algorithm", "wcag21"},
			want: []contrast.Algorithm{contrast.AlgorithmWCAG21},
		},
		{
			name: "short alias",
			args: []string{"-a", "delta-phi"},
			want: []contrast.Algorithm{contrast.AlgorithmDeltaPhi},
		},
		{
			name:     "all",
			allowAll: true,
			args:     []string{"-a", "ALL"},
			want:     contrast.ValidAlgorithms(),
		},
		{
			name:    "all not allowed",
			args:    []string{"-a", "all"},
			wantErr: true,
		},
		{
			name:    "unknown",
			args:    []string{"-a", "nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlgorithmFlag(contrast.AlgorithmAPCA, tt.allowAll)
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			registerAlgorithmFlag(fs, f)

			err := fs.Parse(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := f.resolve(contrast.AlgorithmMichelson); !slices.Equal(got, tt.want) {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlgorithmFlagString(t *testing.T) {
	f := newAlgorithmFlag(contrast.AlgorithmAPCA, true)
	if got := f.String(); got != "apca" {
		t.Errorf("String() = %q, want %q", got, "apca")
	}
	if err := f.Set("all"); err != nil {
		t.Fatalf("Set(all) error = %v", err)
	}
	if got := f.String(); got != "all" {
		t.Errorf("String() = %q, want %q", got, "all")
	}
	if got := f.Type(); got != "algorithm" {
		t.Errorf("Type() = %q, want %q", got, "algorithm")
	}
}
