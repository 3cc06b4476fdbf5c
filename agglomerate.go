package hclust

import (
	"fmt"
	"log"
	"math"
)

// Agglomerate clusters n items bottom-up with average linkage and returns
// the root of the merge hierarchy. distMatrix is flat []float64, n×n
// row-major, and is only read.
//
// Each step merges the closest pair of current clusters at half their
// average linkage distance. For n == 1 the single leaf is returned.
func Agglomerate(distMatrix []float64, n int) (*Tree, error) {
	tree, _, err := AgglomerateLinkage(distMatrix, n)
	return tree, err
}

// AgglomerateLinkage is Agglomerate that also returns the merges as a
// linkage table: one row per merge in merge order, [left, right, height,
// mergedSize]. Leaves have IDs 0..n-1 and the k-th merge gets ID n+k.
func AgglomerateLinkage(distMatrix []float64, n int) (*Tree, [][4]float64, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrEmptyInput, n)
	}
	if len(distMatrix) != n*n {
		return nil, nil, fmt.Errorf("%w: distMatrix length %d does not match n*n = %d (n=%d)",
			ErrDimensionMismatch, len(distMatrix), n*n, n)
	}
	warnAsymmetric(distMatrix, n)

	// clusters and ids are kept in lockstep.
	clusters := make([]*Tree, n)
	ids := make([]int, n)
	for i := range clusters {
		clusters[i] = NewLeaf(i)
		ids[i] = i
	}

	linkage := make([][4]float64, 0, n-1)
	nextID := n

	for len(clusters) > 1 {
		minDist := math.Inf(1)
		minI, minJ := -1, -1
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				d := AverageLinkage(distMatrix, n, clusters[i], clusters[j])
				// Strict comparison: the first pair found wins ties.
				if d < minDist || minI == -1 {
					minDist = d
					minI, minJ = i, j
				}
			}
		}

		merged := NewMerge(clusters[minI], clusters[minJ], minDist/2)
		linkage = append(linkage, [4]float64{
			float64(ids[minI]),
			float64(ids[minJ]),
			merged.Height(),
			float64(merged.Size()),
		})

		clusters = removeAt(clusters, minJ)
		clusters = removeAt(clusters, minI)
		ids = removeAt(ids, minJ)
		ids = removeAt(ids, minI)

		clusters = append(clusters, merged)
		ids = append(ids, nextID)
		nextID++
	}

	return clusters[0], linkage, nil
}

// AverageLinkage returns the mean distance between every leaf of a and
// every leaf of b.
func AverageLinkage(distMatrix []float64, n int, a, b *Tree) float64 {
	var total float64
	right := b.LeafIndices()
	for _, i := range a.LeafIndices() {
		row := distMatrix[i*n : (i+1)*n]
		for _, j := range right {
			total += row[j]
		}
	}
	return total / float64(a.Size()*b.Size())
}

// removeAt deletes s[i] preserving the order of the remaining elements.
func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

// warnAsymmetric logs the first off-diagonal pair that differs. The
// algorithm still runs; only d[a][b] with a from the left cluster is read.
func warnAsymmetric(distMatrix []float64, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if distMatrix[i*n+j] != distMatrix[j*n+i] {
				log.Printf("hclust: distance matrix is not symmetric: d[%d][%d]=%g, d[%d][%d]=%g",
					i, j, distMatrix[i*n+j], j, i, distMatrix[j*n+i])
				return
			}
		}
	}
}
