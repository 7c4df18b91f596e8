package contrast

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/contrast/internal/colour"
)

func TestSolveConverges(t *testing.T) {
	tests := []struct {
		name   string
		fg     colour.Color
		bg     colour.Color
		target float64
		metric Metric
		tol    float64
	}{
		{name: "apca grey on white", fg: colour.SRGB(0.5, 0.5, 0.5), bg: white, target: 60, metric: APCA, tol: 5},
		{name: "apca negative target", fg: colour.SRGB(0.5, 0.5, 0.5), bg: white, target: -60, metric: APCA, tol: 5},
		{name: "apca blue on white", fg: colour.HSL(210, 0.6, 0.4), bg: white, target: 75, metric: APCA, tol: 1},
		{name: "apca blue on black", fg: colour.HSL(210, 0.6, 0.4), bg: black, target: -75, metric: APCA, tol: 1},
		{name: "wcag grey on white", fg: colour.SRGB(0.5, 0.5, 0.5), bg: white, target: 4.5, metric: WCAG21, tol: 0.1},
		{name: "wcag green on black", fg: colour.HSL(120, 0.5, 0.5), bg: black, target: 7, metric: WCAG21, tol: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := SolveDetailed(tt.fg, tt.bg, tt.target, tt.metric)
			if diff := math.Abs(math.Abs(sol.Contrast) - math.Abs(tt.target)); diff >= tt.tol {
				t.Errorf("achieved %g, target %g (diff %g)", sol.Contrast, tt.target, diff)
			}
			if sol.Iterations > DefaultMaxIterations {
				t.Errorf("used %d iterations, budget %d", sol.Iterations, DefaultMaxIterations)
			}
			if got := tt.metric(sol.Color, tt.bg); got != sol.Contrast {
				t.Errorf("reported contrast %g does not match colour's contrast %g", sol.Contrast, got)
			}
		})
	}
}

func TestSolvePreservesHueAndSaturation(t *testing.T) {
	inputs := []colour.Color{
		colour.HSL(210, 0.6, 0.4),
		colour.HSL(15, 0.9, 0.8),
		colour.HSL(300, 0.25, 0.1),
		colour.SRGB(0.5, 0.5, 0.5),
		colour.SRGB(0.8, 0.2, 0.3).WithAlpha(0.6),
	}
	backgrounds := []colour.Color{white, black, grey}

	for _, fg := range inputs {
		for _, bg := range backgrounds {
			got := Solve(fg, bg, 70, APCA)
			wantH, wantS, _ := fg.HSL()
			h, s, l := got.HSL()

			if math.Abs(h-wantH) > 1e-9 || math.Abs(s-wantS) > 1e-9 {
				t.Errorf("Solve(%s on %s): hue/sat = %g/%g, want %g/%g", fg, bg, h, s, wantH, wantS)
			}
			if l < 0 || l > 1 {
				t.Errorf("Solve(%s on %s): lightness %g outside [0,1]", fg, bg, l)
			}
			if got.A != fg.A {
				t.Errorf("Solve(%s on %s): alpha %g, want %g", fg, bg, got.A, fg.A)
			}
		}
	}
}

func TestSolveRoundTripKeepsHue(t *testing.T) {
	fg := colour.HSL(210, 0.6, 0.4)
	got := colour.Convert(Solve(fg, white, 75, APCA), colour.SpaceSRGB)
	h, s, _ := got.HSL()
	if math.Abs(h-210) > 1e-6 || math.Abs(s-0.6) > 1e-6 {
		t.Errorf("hue/sat after sRGB round trip = %g/%g, want 210/0.6", h, s)
	}
}

func TestSolveIncreasesContrastFromLow(t *testing.T) {
	fg := colour.SRGB(0.466, 0.466, 0.466)
	bg := colour.SRGB(0.47, 0.47, 0.47)

	before := math.Abs(APCA(fg, bg))
	after := math.Abs(APCA(Solve(fg, bg, 90, APCA), bg))
	if after <= before {
		t.Errorf("contrast did not increase: before %g, after %g", before, after)
	}
	if after < 70 {
		t.Errorf("expected the lightest variant to reach about 76, got %g", after)
	}
}

func TestSolveUnreachableTarget(t *testing.T) {
	// Nothing reaches Lc 200 on black, so the closest candidate (near white)
	// is returned instead of an error.
	sol := SolveDetailed(colour.SRGB(0.5, 0.5, 0.5), black, 200, APCA)
	if sol.Contrast > -100 {
		t.Errorf("expected near-white result, got contrast %g", sol.Contrast)
	}
	if _, _, l := sol.Color.HSL(); l < 0.99 {
		t.Errorf("expected lightness near 1, got %g", l)
	}
}

func TestSolveDoesNotModifyInputs(t *testing.T) {
	fg := colour.HSL(30, 0.5, 0.5)
	bg := white
	fgCopy, bgCopy := fg, bg

	Solve(fg, bg, 60, APCA)

	if fg != fgCopy || bg != bgCopy {
		t.Error("inputs were modified")
	}
}

func TestSolveOptions(t *testing.T) {
	fg := colour.SRGB(0.5, 0.5, 0.5)

	tests := []struct {
		name     string
		opts     []SolveOption
		wantIter int
	}{
		{name: "defaults", opts: nil, wantIter: 10},
		{name: "iteration cap", opts: []SolveOption{WithMaxIterations(3)}, wantIter: 3},
		{name: "coarse epsilon", opts: []SolveOption{WithEpsilon(0.2)}, wantIter: 3},
		{name: "invalid values ignored", opts: []SolveOption{WithMaxIterations(0), WithEpsilon(-1), WithEpsilon(math.NaN())}, wantIter: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := SolveDetailed(fg, white, 60, APCA, tt.opts...)
			if sol.Iterations != tt.wantIter {
				t.Errorf("Iterations = %d, want %d", sol.Iterations, tt.wantIter)
			}
		})
	}
}

func TestSolveNoIterationsKeepsLightness(t *testing.T) {
	fg := colour.HSL(90, 0.3, 0.25)
	sol := SolveDetailed(fg, white, 60, APCA, WithEpsilon(2))
	if sol.Iterations != 0 {
		t.Fatalf("Iterations = %d, want 0", sol.Iterations)
	}
	if _, _, l := sol.Color.HSL(); l != 0.25 {
		t.Errorf("lightness = %g, want 0.25", l)
	}
}

func TestSolveLogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "solver",
		Output: &buf,
		Level:  hclog.Trace,
	})

	SolveDetailed(colour.SRGB(0.5, 0.5, 0.5), white, 60, APCA, WithLogger(logger))

	out := buf.String()
	if strings.Count(out, "bisect") != 10 {
		t.Errorf("expected 10 bisect trace lines, got:\n%s", out)
	}
	if !strings.Contains(out, "solved") {
		t.Errorf("expected a solved debug line, got:\n%s", out)
	}
}

func TestSolveString(t *testing.T) {
	got, err := SolveString(AlgorithmAPCA, "#808080", "#ffffff", 60)
	if err != nil {
		t.Fatalf("SolveString() error = %v", err)
	}
	if c := APCA(got, white); math.Abs(c-60) >= 5 {
		t.Errorf("achieved %g, want about 60", c)
	}

	if _, err := SolveString(AlgorithmAPCA, "not-a-colour", "#fff", 60); err == nil {
		t.Error("expected parse error for foreground")
	}
	if _, err := SolveString(Algorithm("nope"), "#000", "#fff", 60); err == nil {
		t.Error("expected unknown algorithm error")
	}
}
