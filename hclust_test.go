package hclust

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if _, ok := cfg.Metric.(EuclideanMetric); !ok {
		t.Errorf("Metric: got %T, want EuclideanMetric", cfg.Metric)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers: got %d, want 0", cfg.Workers)
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = -1

	_, err := Cluster([][]float64{{1, 2}, {3, 4}}, cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if _, ok := cfg.Metric.(EuclideanMetric); !ok {
		t.Errorf("Metric: got %T, want EuclideanMetric", cfg.Metric)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers: got %d, want >= 1", cfg.Workers)
	}
}

func TestCluster_Points(t *testing.T) {
	// Points on a line at 0, 1, 10, 12. Pairs (0,1) at 1 and (10,12) at 2.
	//   Step 0: merge (0,1) at 0.5 → [p2 p3 p01]
	//   Step 1: p2-p3 = 2, p2-p01 = (10+9)/2, p3-p01 = (12+11)/2. Merge (p2,p3) at 1.
	//   Step 2: p01-p23 = (10+12+9+11)/4 = 10.5 → 5.25
	data := [][]float64{{0}, {1}, {10}, {12}}
	cfg := DefaultConfig()
	cfg.Workers = 2

	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(result.Tree.Height(), 5.25, floatTol) {
		t.Errorf("root height = %v, want 5.25", result.Tree.Height())
	}

	lines, err := result.Lines(Alphabet{"p0", "p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"5.25─0.5─p0",
		"│    └───p1",
		"└──────1─p2",
		"       └─p3",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	labels := result.FlatLabels(1)
	wantLabels := []int{0, 0, 1, 1}
	for i := range wantLabels {
		if labels[i] != wantLabels[i] {
			t.Errorf("FlatLabels(1)[%d] = %d, want %d", i, labels[i], wantLabels[i])
		}
	}
}

func TestCluster_CustomMetric(t *testing.T) {
	// A metric that ignores the first coordinate.
	cfg := DefaultConfig()
	cfg.Metric = DistanceFunc(func(a, b []float64) float64 {
		return ManhattanMetric{}.Distance(a[1:], b[1:])
	})
	data := [][]float64{{100, 0}, {-100, 0}, {0, 8}}

	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Linkage[0][2] != 0 {
		t.Errorf("first merge height = %v, want 0", result.Linkage[0][2])
	}
	if result.Tree.Height() != 4 {
		t.Errorf("root height = %v, want 4", result.Tree.Height())
	}
}

func TestCluster_Errors(t *testing.T) {
	if _, err := Cluster(nil, DefaultConfig()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty data: expected ErrEmptyInput, got %v", err)
	}
	if _, err := Cluster([][]float64{{1, 2}, {3}}, DefaultConfig()); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ragged data: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestClusterPrecomputed_Errors(t *testing.T) {
	if _, err := ClusterPrecomputed(nil, 0); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("n=0: expected ErrEmptyInput, got %v", err)
	}
	if _, err := ClusterPrecomputed([]float64{0, 1, 1, 0}, 3); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short matrix: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestClusterPrecomputed_SingleItem(t *testing.T) {
	result, err := ClusterPrecomputed([]float64{0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Linkage) != 0 {
		t.Errorf("expected no merges, got %d", len(result.Linkage))
	}
	lines, err := result.Lines(Alphabet{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "A" {
		t.Errorf("expected [\"A\"], got %q", lines)
	}
}
