package repository

import "testing"

func TestParseSortField(t *testing.T) {
	cases := map[string]SortField{
		"title":      SortByTitle,
		"created_at": SortByCreatedAt,
		"":           SortByCreatedAt,
		"TITLE":      SortByCreatedAt,
		" title":     SortByCreatedAt,
		"rtp":        SortByCreatedAt,
	}
	for in, want := range cases {
		if got := ParseSortField(in); got != want {
			t.Fatalf("ParseSortField(%q)=%s want %s", in, got, want)
		}
	}
}

func TestParseSortDirection(t *testing.T) {
	cases := map[string]SortDirection{
		"desc":     SortDesc,
		"DESC":     SortDesc,
		"asc":      SortAsc,
		"":         SortAsc,
		" desc":    SortAsc,
		"sideways": SortAsc,
	}
	for in, want := range cases {
		if got := ParseSortDirection(in); got != want {
			t.Fatalf("ParseSortDirection(%q)=%s want %s", in, got, want)
		}
	}
}
