package permute

import "sort"

// permutations returns every ordering of items in lexicographic order of
// their original indices; the identity ordering comes first. An empty input
// yields a single empty ordering.
func permutations[T any](items []T) [][]T {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	var out [][]T

	for {
		perm := make([]T, len(items))
		for i, j := range idx {
			perm[i] = items[j]
		}

		out = append(out, perm)

		if !nextPermutation(idx) {
			return out
		}
	}
}

// nextPermutation advances idx to the next lexicographic ordering and
// reports false once the last ordering has been reached.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}

	idx[i], idx[j] = idx[j], idx[i]
	sort.Ints(idx[i+1:])

	return true
}
