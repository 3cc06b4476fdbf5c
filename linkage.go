package hclust

// FlatLabels cuts a linkage table at threshold and returns a cluster label
// for each of the n items. Every merge with height <= threshold is applied;
// the rest are ignored. Labels start at 0 and are numbered in order of
// first appearance when scanning items 0..n-1.
//
// linkage is in the format returned by AgglomerateLinkage. Rows are
// assumed to be in merge order, so a row only refers to IDs created by
// earlier rows.
func FlatLabels(linkage [][4]float64, n int, threshold float64) []int {
	uf := NewUnionFind(n)

	// representative[k] is any item inside cluster ID n+k.
	representative := make([]int, len(linkage))
	member := func(id int) int {
		if id < n {
			return id
		}
		return representative[id-n]
	}

	for k, row := range linkage {
		a := member(int(row[0]))
		b := member(int(row[1]))
		representative[k] = a
		if row[2] <= threshold {
			uf.Union(a, b)
		}
	}

	labels := make([]int, n)
	byRoot := make(map[int]int)
	for i := range labels {
		root := uf.Find(i)
		label, ok := byRoot[root]
		if !ok {
			label = len(byRoot)
			byRoot[root] = label
		}
		labels[i] = label
	}
	return labels
}

// Leaves returns the item IDs under cluster id of a linkage table with n
// items, in left-to-right order.
func Leaves(linkage [][4]float64, n, id int) []int {
	if id < n {
		return []int{id}
	}
	row := linkage[id-n]
	return append(Leaves(linkage, n, int(row[0])), Leaves(linkage, n, int(row[1]))...)
}
