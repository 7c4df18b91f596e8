package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/contrast/internal/contrast"
)

const algorithmAll = "all"

// algorithmFlag is a pflag.Value selecting one algorithm, or every algorithm
// when allowAll is set and the value is "all".
type algorithmFlag struct {
	algorithms []contrast.Algorithm
	allowAll   bool
	set        bool
}

var _ pflag.Value = (*algorithmFlag)(nil)

func newAlgorithmFlag(def contrast.Algorithm, allowAll bool) *algorithmFlag {
	return &algorithmFlag{
		algorithms: []contrast.Algorithm{def},
		allowAll:   allowAll,
	}
}

// String implements pflag.Value.
func (f *algorithmFlag) String() string {
	if len(f.algorithms) == len(contrast.ValidAlgorithms()) && f.allowAll {
		return algorithmAll
	}
	names := make([]string, len(f.algorithms))
	for i, a := range f.algorithms {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

// Set implements pflag.Value.
func (f *algorithmFlag) Set(v string) error {
	f.set = true
	if f.allowAll && strings.EqualFold(strings.TrimSpace(v), algorithmAll) {
		f.algorithms = contrast.ValidAlgorithms()
		return nil
	}
	alg, err := contrast.ParseAlgorithm(v)
	if err != nil {
		return err
	}
	f.algorithms = []contrast.Algorithm{alg}
	return nil
}

// Type implements pflag.Value.
func (f *algorithmFlag) Type() string {
	return "algorithm"
}

// resolve returns the selected algorithms, falling back to def when the flag
// was not given on the command line.
func (f *algorithmFlag) resolve(def ...contrast.Algorithm) []contrast.Algorithm {
	if f.set {
		return f.algorithms
	}
	return def
}

// registerAlgorithmFlag adds -a/--algorithm to a flag set.
func registerAlgorithmFlag(flags *pflag.FlagSet, f *algorithmFlag) {
	usage := "contrast algorithm (apca, wcag21, michelson, deltaphi)"
	if f.allowAll {
		usage = "contrast algorithm (apca, wcag21, michelson, deltaphi, all)"
	}
	flags.VarP(f, "algorithm", "a", usage)
}
