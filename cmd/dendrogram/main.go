// Command dendrogram clusters items from a JSON distance matrix with average
// linkage and prints the resulting text dendrogram.
//
// Input format:
//
//	{"labels": ["A", "B", "C"], "distances": [[0, 2, 4], [2, 0, 4], [4, 4, 0]]}
//
// labels is optional; items are lettered A, B, C, ... when it is missing.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/TrevorS/hclust"
)

type input struct {
	Labels    []string    `json:"labels"`
	Distances [][]float64 `json:"distances"`
}

// reference is the four-item example used by -demo.
var reference = input{
	Labels: []string{"A", "B", "C", "D"},
	Distances: [][]float64{
		{0, 2, 4, 6},
		{2, 0, 4, 6},
		{4, 4, 0, 6},
		{6, 6, 6, 0},
	},
}

func main() {
	log.SetFlags(0)

	inPath := flag.String("in", "-", "JSON input file, - for stdin")
	demo := flag.Bool("demo", false, "cluster the built-in four-item example instead of reading input")
	cut := flag.Float64("cut", math.NaN(), "also print flat cluster labels for merges at or below this height")
	flag.Parse()

	in := reference
	if !*demo {
		var err error
		in, err = readInput(*inPath)
		if err != nil {
			log.Fatalf("dendrogram: %v", err)
		}
	}

	if err := run(os.Stdout, in, *cut); err != nil {
		log.Fatalf("dendrogram: %v", err)
	}
}

func readInput(path string) (input, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input{}, err
		}
		defer f.Close()
		r = f
	}

	var in input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return input{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return in, nil
}

func run(w io.Writer, in input, cut float64) error {
	m, err := toDense(in.Distances)
	if err != nil {
		return err
	}

	result, err := hclust.ClusterMatrix(m)
	if err != nil {
		return err
	}

	var labels hclust.Alphabet = in.Labels
	if labels == nil {
		labels = hclust.Letters(result.Tree.Size())
	}

	lines, err := result.Lines(labels)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		fmt.Fprintln(bw, line)
	}
	if !math.IsNaN(cut) {
		fmt.Fprintln(bw)
		for i, c := range result.FlatLabels(cut) {
			name, err := labels.Label(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%s\t%d\n", name, c)
		}
	}
	return bw.Flush()
}

func toDense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, hclust.ErrEmptyInput
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, hclust.ErrEmptyInput
	}
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				hclust.ErrDimensionMismatch, i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}
