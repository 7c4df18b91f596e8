package accessibility

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/contrast"
)

var (
	black = colour.SRGB(0, 0, 0)
	white = colour.SRGB(1, 1, 1)
	grey  = colour.SRGB255(0x88, 0x88, 0x88)
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		input   string
		want    ContentType
		wantErr bool
	}{
		{input: "body", want: ContentBody},
		{input: "Large", want: ContentLarge},
		{input: " ui ", want: ContentUI},
		{input: "heading", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContentType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownContentType) {
					t.Fatalf("expected ErrUnknownContentType, got %v", err)
				}
				if !strings.Contains(err.Error(), `"`+tt.input+`"`) {
					t.Errorf("error %q should carry the offending value", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseContentType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if got, err := ParseLevel("aaa"); err != nil || got != LevelAAA {
		t.Errorf("ParseLevel(aaa) = %s, %v", got, err)
	}
	if got, err := ParseLevel("AA"); err != nil || got != LevelAA {
		t.Errorf("ParseLevel(AA) = %s, %v", got, err)
	}
	if _, err := ParseLevel("A"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name    string
		alg     contrast.Algorithm
		ct      ContentType
		level   Level
		want    float64
		wantErr error
	}{
		{name: "wcag body aa", alg: contrast.AlgorithmWCAG21, ct: ContentBody, level: LevelAA, want: 4.5},
		{name: "wcag body aaa", alg: contrast.AlgorithmWCAG21, ct: ContentBody, level: LevelAAA, want: 7},
		{name: "wcag large aa", alg: contrast.AlgorithmWCAG21, ct: ContentLarge, level: LevelAA, want: 3},
		{name: "apca body aa", alg: contrast.AlgorithmAPCA, ct: ContentBody, level: LevelAA, want: 75},
		{name: "apca large aaa", alg: contrast.AlgorithmAPCA, ct: ContentLarge, level: LevelAAA, want: 60},
		{name: "michelson", alg: contrast.AlgorithmMichelson, ct: ContentBody, level: LevelAA, wantErr: ErrNoThresholds},
		{name: "deltaphi", alg: contrast.AlgorithmDeltaPhi, ct: ContentBody, level: LevelAA, wantErr: ErrNoThresholds},
		{name: "unknown algorithm", alg: "weber", ct: ContentBody, level: LevelAA, wantErr: contrast.ErrUnknownAlgorithm},
		{name: "unknown content", alg: contrast.AlgorithmAPCA, ct: "poster", level: LevelAA, wantErr: ErrUnknownContentType},
		{name: "unknown level", alg: contrast.AlgorithmAPCA, ct: ContentBody, level: "A", wantErr: ErrUnknownLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Threshold(tt.alg, tt.ct, tt.level)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Threshold() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Threshold() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		alg   contrast.Algorithm
		fg    colour.Color
		bg    colour.Color
		ct    ContentType
		level Level
		pass  bool
	}{
		{name: "wcag black on white aaa", alg: contrast.AlgorithmWCAG21, fg: black, bg: white, ct: ContentBody, level: LevelAAA, pass: true},
		{name: "wcag grey on white body", alg: contrast.AlgorithmWCAG21, fg: grey, bg: white, ct: ContentBody, level: LevelAA, pass: false},
		{name: "wcag grey on white large", alg: contrast.AlgorithmWCAG21, fg: grey, bg: white, ct: ContentLarge, level: LevelAA, pass: true},
		{name: "apca white on black body", alg: contrast.AlgorithmAPCA, fg: white, bg: black, ct: ContentBody, level: LevelAAA, pass: true},
		{name: "apca grey on white body", alg: contrast.AlgorithmAPCA, fg: grey, bg: white, ct: ContentBody, level: LevelAA, pass: false},
		{name: "apca grey on white content", alg: contrast.AlgorithmAPCA, fg: grey, bg: white, ct: ContentText, level: LevelAA, pass: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.alg, tt.fg, tt.bg, tt.ct, tt.level)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if res.Pass != tt.pass {
				t.Errorf("Pass = %v, want %v (contrast %g, required %g)", res.Pass, tt.pass, res.Contrast, res.Required)
			}
			if res.Algorithm != tt.alg || res.ContentType != tt.ct || res.Level != tt.level {
				t.Errorf("result does not echo its inputs: %+v", res)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		alg  contrast.Algorithm
		fg   colour.Color
		bg   colour.Color
	}{
		{name: "wcag grey on white", alg: contrast.AlgorithmWCAG21, fg: grey, bg: white},
		{name: "apca grey on white", alg: contrast.AlgorithmAPCA, fg: grey, bg: white},
		{name: "apca blue on black", alg: contrast.AlgorithmAPCA, fg: colour.HSL(210, 0.6, 0.4), bg: black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res, err := Suggest(tt.alg, tt.fg, tt.bg, ContentBody, LevelAA)
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			if !res.Pass {
				t.Errorf("suggestion does not pass: contrast %g, required %g", res.Contrast, res.Required)
			}

			metric, _ := tt.alg.Metric()
			if c := metric(got, tt.bg); math.Abs(c-res.Contrast) > 1e-12 {
				t.Errorf("result contrast %g does not match colour contrast %g", res.Contrast, c)
			}

			wantH, wantS, _ := tt.fg.HSL()
			h, s, _ := got.HSL()
			if math.Abs(h-wantH) > 1e-9 || math.Abs(s-wantS) > 1e-9 {
				t.Errorf("hue/sat changed: %g/%g, want %g/%g", h, s, wantH, wantS)
			}
		})
	}
}

func TestSuggestKeepsPassingColour(t *testing.T) {
	got, res, err := Suggest(contrast.AlgorithmWCAG21, black, white, ContentBody, LevelAAA)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if got != black {
		t.Errorf("passing colour was changed to %s", got)
	}
	if !res.Pass {
		t.Error("expected pass")
	}
}

func TestSuggestUnknownContentType(t *testing.T) {
	_, _, err := Suggest(contrast.AlgorithmAPCA, black, white, "poster", LevelAA)
	if !errors.Is(err, ErrUnknownContentType) {
		t.Errorf("expected ErrUnknownContentType, got %v", err)
	}
}
