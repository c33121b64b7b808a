package cadastro

import (
	"sort"
	"strings"
)

// Row is one displayed table row, one string per visible column.
type Row []string

// FilterRows returns the rows containing the term as a case-insensitive
// substring in any column. An empty term returns every row.
func FilterRows(rows []Row, term string) []Row {
	term = strings.ToLower(Sanitize(term))
	if term == "" {
		return rows
	}

	var filtered []Row
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), term) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// SortState tracks which column a view is sorted by and in which direction.
// The zero value means unsorted.
type SortState struct {
	Column     int  // Column index being sorted, -1 when unsorted.
	Descending bool // Direction of the current sort.
}

// NewSortState returns an unsorted state.
func NewSortState() SortState {
	return SortState{Column: -1}
}

// Toggle records a click on a column header: clicking a new column sorts it
// ascending, clicking the same column flips the direction. Clicking the same
// column twice therefore lands back on ascending order.
func (s *SortState) Toggle(column int) {
	if s.Column == column {
		s.Descending = !s.Descending
		return
	}
	s.Column = column
	s.Descending = false
}

// SortRows stably sorts rows by the displayed text of one column.
// Rows shorter than the column index sort first.
func SortRows(rows []Row, column int, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := "", ""
		if column < len(rows[i]) {
			a = strings.ToLower(rows[i][column])
		}
		if column < len(rows[j]) {
			b = strings.ToLower(rows[j][column])
		}
		if descending {
			return a > b
		}
		return a < b
	})
}
