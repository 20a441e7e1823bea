package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/lineq/pkg/line"
)

func TestSamplePoints(t *testing.T) {
	tests := []struct {
		name           string
		from, to, step float64
		wantX          []float64
	}{
		{"unit step", 0, 3, 1, []float64{0, 1, 2, 3}},
		{"single point", 2, 2, 1, []float64{2}},
		{"step overshoots", 0, 2.5, 1, []float64{0, 1, 2}},
		{"tenths reach upper bound", 0, 0.3, 0.1, []float64{0, 0.1, 0.2, 0.3}},
		{"negative range", -2, 0, 1, []float64{-2, -1, 0}},
	}

	l := line.New(2, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := samplePoints(l, tt.from, tt.to, tt.step)
			if err != nil {
				t.Fatalf("samplePoints error: %v", err)
			}
			if len(pts) != len(tt.wantX) {
				t.Fatalf("len = %d, want %d: %+v", len(pts), len(tt.wantX), pts)
			}
			for i, p := range pts {
				if p.X != tt.wantX[i] {
					t.Errorf("pts[%d].X = %v, want %v", i, p.X, tt.wantX[i])
				}
				if p.Y != l.Y(p.X) {
					t.Errorf("pts[%d].Y = %v, want %v", i, p.Y, l.Y(p.X))
				}
			}
		})
	}
}

func TestSamplePointsInvalid(t *testing.T) {
	if _, err := samplePoints(line.New(1, 0), 0, 1, 0); err == nil {
		t.Error("zero step should fail")
	}
	if _, err := samplePoints(line.New(1, 0), 1, 0, 1); err == nil {
		t.Error("reversed range should fail")
	}
}

func TestRenderSamples(t *testing.T) {
	out := renderSamples([]point{{X: -1, Y: -1}, {X: 0.5, Y: 2}})
	for _, want := range []string{"x", "y", "-1", "0.5", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
