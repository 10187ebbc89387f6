package catalog

import "sort"

// Visible returns the scenarios matching both filters, preserving catalog
// order. A filter value of CategoryAll / DifficultyAll (or empty) matches
// everything.
func Visible(all []Scenario, difficulty Difficulty, category Category) []Scenario {
	matchDifficulty := difficulty == "" || difficulty == DifficultyAll
	matchCategory := category == "" || category == CategoryAll

	out := make([]Scenario, 0, len(all))
	for _, sc := range all {
		if !matchDifficulty && sc.Difficulty != difficulty {
			continue
		}
		if !matchCategory && sc.Category != category {
			continue
		}
		out = append(out, sc)
	}
	return out
}

// Categories returns the sorted distinct categories present in the catalog,
// with the CategoryAll sentinel prepended.
func Categories(all []Scenario) []Category {
	seen := make(map[Category]bool)
	for _, sc := range all {
		seen[sc.Category] = true
	}

	distinct := make([]Category, 0, len(seen))
	for c := range seen {
		distinct = append(distinct, c)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	return append([]Category{CategoryAll}, distinct...)
}
