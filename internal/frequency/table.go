// Package frequency aggregates tokens into a sorted frequency table.
package frequency

import "sort"

// Entry is one row of the frequency table.
type Entry struct {
	Token string
	Total int
}

// Table is a frequency table sorted by count descending, then token
// ascending. The tie-break keeps output files deterministic across runs.
type Table []Entry

// Count aggregates token occurrences into a sorted Table.
func Count(tokens []string) Table {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	table := make(Table, 0, len(counts))
	for tok, n := range counts {
		table = append(table, Entry{Token: tok, Total: n})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Total != table[j].Total {
			return table[i].Total > table[j].Total
		}
		return table[i].Token < table[j].Token
	})
	return table
}

// Head returns the first n rows (fewer if the table is shorter).
func (t Table) Head(n int) Table {
	if n > len(t) {
		n = len(t)
	}
	return t[:n]
}

// AtLeast returns the rows with Total >= min. The table is sorted, so this
// is the leading run of rows.
func (t Table) AtLeast(min int) Table {
	i := sort.Search(len(t), func(i int) bool { return t[i].Total < min })
	return t[:i]
}

// Sum returns the total number of token occurrences in the table.
func (t Table) Sum() int {
	sum := 0
	for _, e := range t {
		sum += e.Total
	}
	return sum
}
