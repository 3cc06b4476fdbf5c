package hclust

import "errors"

var (
	// ErrEmptyInput is returned when there are no items to cluster.
	ErrEmptyInput = errors.New("hclust: empty input")

	// ErrDimensionMismatch is returned for non-square distance matrices,
	// matrices whose length does not match n*n, and ragged point data.
	ErrDimensionMismatch = errors.New("hclust: dimension mismatch")

	// ErrUnknownLabel is returned by a Labeler asked for an index it does
	// not cover.
	ErrUnknownLabel = errors.New("hclust: unknown label index")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("hclust: invalid config")
)
