package cadastro

import (
	"reflect"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{"AUT-1001", "Ana Souza", "ana@example.com"},
		{"AUT-1002", "Bruno Lima", "bruno@example.com"},
		{"AUT-1003", "Carla Mendes", ""},
	}
}

func TestFilterRows(t *testing.T) {
	t.Run("should return every row for an empty term", func(t *testing.T) {
		rows := sampleRows()

		got := FilterRows(rows, "")
		if len(got) != len(rows) {
			t.Fatalf("\nwanted:\n%d\ngot:\n%d", len(rows), len(got))
		}
	})

	t.Run("should return exactly the row whose name contains the term", func(t *testing.T) {
		got := FilterRows(sampleRows(), "bruno")

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0][0] != "AUT-1002" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "AUT-1002", got[0][0])
		}
	})

	t.Run("should match case-insensitively across all columns", func(t *testing.T) {
		got := FilterRows(sampleRows(), "ANA@EXAMPLE")

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0][1] != "Ana Souza" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Ana Souza", got[0][1])
		}
	})

	t.Run("should return no rows when nothing matches", func(t *testing.T) {
		got := FilterRows(sampleRows(), "zzz")
		if len(got) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(got))
		}
	})
}

func TestSortRows(t *testing.T) {
	t.Run("should sort by the chosen column ascending", func(t *testing.T) {
		rows := []Row{
			{"AUT-1003", "Carla"},
			{"AUT-1001", "Ana"},
			{"AUT-1002", "Bruno"},
		}

		SortRows(rows, 1, false)

		want := []Row{
			{"AUT-1001", "Ana"},
			{"AUT-1002", "Bruno"},
			{"AUT-1003", "Carla"},
		}
		if !reflect.DeepEqual(rows, want) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, rows)
		}
	})

	t.Run("should keep the relative order of equal keys", func(t *testing.T) {
		rows := []Row{
			{"AUT-1003", "Ana"},
			{"AUT-1001", "Ana"},
			{"AUT-1002", "Bruno"},
		}

		SortRows(rows, 1, false)

		if rows[0][0] != "AUT-1003" || rows[1][0] != "AUT-1001" {
			t.Fatalf("\nwanted:\nstable order AUT-1003, AUT-1001\ngot:\n%v", rows)
		}
	})
}

func TestSortState_Toggle(t *testing.T) {
	t.Run("should land back on ascending after two clicks on the same column", func(t *testing.T) {
		state := NewSortState()

		state.Toggle(1)
		if state.Column != 1 || state.Descending {
			t.Fatalf("\nwanted:\ncolumn 1 ascending\ngot:\n%+v", state)
		}

		state.Toggle(1)
		state.Toggle(1)
		if state.Column != 1 || state.Descending {
			t.Fatalf("\nwanted:\ncolumn 1 ascending\ngot:\n%+v", state)
		}
	})

	t.Run("should reset to ascending when a different column is clicked", func(t *testing.T) {
		state := NewSortState()

		state.Toggle(0)
		state.Toggle(0)
		if !state.Descending {
			t.Fatalf("\nwanted:\ndescending\ngot:\n%+v", state)
		}

		state.Toggle(2)
		if state.Column != 2 || state.Descending {
			t.Fatalf("\nwanted:\ncolumn 2 ascending\ngot:\n%+v", state)
		}
	})

	t.Run("should restore the original order when sorting twice", func(t *testing.T) {
		rows := []Row{
			{"AUT-1001", "Ana"},
			{"AUT-1002", "Bruno"},
			{"AUT-1003", "Carla"},
		}
		original := make([]Row, len(rows))
		copy(original, rows)

		state := NewSortState()
		state.Toggle(1)
		SortRows(rows, state.Column, state.Descending)
		state.Toggle(1)
		SortRows(rows, state.Column, state.Descending)
		state.Toggle(1)
		SortRows(rows, state.Column, state.Descending)

		if !reflect.DeepEqual(rows, original) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", original, rows)
		}
	})
}
