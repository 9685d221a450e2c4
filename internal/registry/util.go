package registry

import (
	"slices"
	"sort"

	"github.com/samber/lo"
)

// insertSorted adds v to the sorted slice xs unless already present.
func insertSorted(xs []string, v string) []string {
	i, found := slices.BinarySearch(xs, v)
	if found {
		return xs
	}
	return slices.Insert(xs, i, v)
}

// removeSorted drops v from the sorted slice xs if present.
func removeSorted(xs []string, v string) []string {
	i, found := slices.BinarySearch(xs, v)
	if !found {
		return xs
	}
	return slices.Delete(xs, i, i+1)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func clone(xs []string) []string {
	return append([]string(nil), xs...)
}
