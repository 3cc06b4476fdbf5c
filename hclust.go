package hclust

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

// Config controls how points are turned into a distance matrix before
// clustering. Start with [DefaultConfig] and override the fields you need.
// ClusterPrecomputed and ClusterMatrix do not take a Config.
type Config struct {
	// Metric is the distance function used to measure point similarity.
	// Built-in: EuclideanMetric, ManhattanMetric, ChebyshevMetric,
	// CosineMetric. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for pairwise
	// distances. 0 means use runtime.NumCPU(). Must be >= 0.
	// Default: 0 (auto).
	Workers int
}

// Result contains the output of clustering.
type Result struct {
	// Tree is the root of the merge hierarchy.
	Tree *Tree

	// Linkage lists the merges in the order they happened, in scipy format:
	// each row is [left, right, height, size]. Merge IDs start at n.
	Linkage [][4]float64
}

// Lines renders the result's dendrogram. See [Tree.Lines].
func (r *Result) Lines(labels Labeler) ([]string, error) {
	return r.Tree.Lines(labels)
}

// FlatLabels cuts the hierarchy at height threshold. See [FlatLabels].
func (r *Result) FlatLabels(threshold float64) []int {
	return FlatLabels(r.Linkage, r.Tree.Size(), threshold)
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Cluster computes pairwise distances between the given points with
// cfg.Metric and clusters them. All points must have the same
// dimensionality.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	n := len(data)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	dims := len(data[0])
	flat := make([]float64, 0, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(row), dims)
		}
		flat = append(flat, row...)
	}

	distMatrix := ComputePairwiseDistancesParallel(flat, n, dims, cfg.Metric, cfg.Workers)
	return clusterFromDistMatrix(distMatrix, n)
}

// ClusterPrecomputed clusters n items from a precomputed distance matrix.
// distMatrix is flat []float64, n×n row-major.
func ClusterPrecomputed(distMatrix []float64, n int) (*Result, error) {
	return clusterFromDistMatrix(distMatrix, n)
}

// ClusterMatrix clusters the items of a square gonum distance matrix.
func ClusterMatrix(m mat.Matrix) (*Result, error) {
	distMatrix, n, err := DistancesFromMatrix(m)
	if err != nil {
		return nil, err
	}
	return clusterFromDistMatrix(distMatrix, n)
}

func clusterFromDistMatrix(distMatrix []float64, n int) (*Result, error) {
	tree, linkage, err := AgglomerateLinkage(distMatrix, n)
	if err != nil {
		return nil, err
	}
	return &Result{Tree: tree, Linkage: linkage}, nil
}
