// Package hclust implements agglomerative hierarchical clustering with
// average linkage, and renders the resulting merge hierarchy as a text
// dendrogram.
//
// Clustering repeatedly merges the closest pair of clusters, where the
// distance between two clusters is the mean of all pairwise item distances
// across them. Each merge is recorded at half that distance.
//
// Basic usage:
//
//	distances := []float64{
//		0, 2, 4, 6,
//		2, 0, 4, 6,
//		4, 4, 0, 6,
//		6, 6, 6, 0,
//	}
//	result, err := hclust.ClusterPrecomputed(distances, 4)
//	lines, err := result.Lines(hclust.Alphabet{"A", "B", "C", "D"})
//
// which produces:
//
//	3─────D
//	└─2───C
//	  └─1─A
//	    └─B
//
// For raw points, [Cluster] computes the distance matrix with a
// [DistanceMetric] first. Gonum matrices are accepted by [ClusterMatrix].
//
// # Determinism
//
// Pairs are scanned with i ascending, then j ascending, and the first
// strict minimum wins. Merged pairs are removed from the working set and
// the new cluster is appended at its end. Identical input therefore always
// yields an identical tree and identical text.
package hclust
