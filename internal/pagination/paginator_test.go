package pagination

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPaginatorDerivedFields(t *testing.T) {
	tests := []struct {
		name             string
		total, perPage   int
		current          int
		wantLast         int
		wantFrom, wantTo int
		wantHasPages     bool
		wantHasMore      bool
	}{
		{"empty", 0, 10, 1, 0, 0, 0, false, false},
		{"single page", 7, 10, 1, 1, 1, 7, false, false},
		{"first of many", 95, 10, 1, 10, 1, 10, true, true},
		{"partial last page", 95, 10, 10, 10, 91, 95, true, false},
		{"zero current clamps to one", 95, 10, 0, 10, 1, 10, true, true},
		{"max int total", math.MaxInt, math.MaxInt, 1, 1, 1, math.MaxInt, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paginator{Total: tt.total, PerPage: tt.perPage, CurrentPage: tt.current, OnEachSide: 3}
			if got := p.LastPage(); got != tt.wantLast {
				t.Errorf("LastPage() = %d, want %d", got, tt.wantLast)
			}
			if got := p.From(); got != tt.wantFrom {
				t.Errorf("From() = %d, want %d", got, tt.wantFrom)
			}
			if got := p.To(); got != tt.wantTo {
				t.Errorf("To() = %d, want %d", got, tt.wantTo)
			}
			if got := p.HasPages(); got != tt.wantHasPages {
				t.Errorf("HasPages() = %v, want %v", got, tt.wantHasPages)
			}
			if got := p.HasMorePages(); got != tt.wantHasMore {
				t.Errorf("HasMorePages() = %v, want %v", got, tt.wantHasMore)
			}
		})
	}
}

func TestPaginatorElements(t *testing.T) {
	p := &Paginator{Total: 10000, PerPage: 10, CurrentPage: 500, OnEachSide: 3}
	elems, err := p.Elements()
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	got := strings.Join(Strings(elems), ",")
	want := "1,2,...,497,498,499,500,501,502,503,...,999,1000"
	if got != want {
		t.Errorf("Elements = %s, want %s", got, want)
	}
}

func TestPaginatorElementsHugeRadius(t *testing.T) {
	p := &Paginator{Total: 100, PerPage: 10, CurrentPage: 5, OnEachSide: math.MaxInt / 2}
	elems, err := p.Elements()
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	got := strings.Join(Strings(elems), ",")
	want := "1,2,3,4,5,6,7,8,9,10"
	if got != want {
		t.Errorf("Elements = %s, want %s", got, want)
	}
}

func TestPaginatorValidate(t *testing.T) {
	bad := []*Paginator{
		{Total: -1, PerPage: 10},
		{Total: 10, PerPage: 0},
		{Total: 10, PerPage: -5},
		{Total: 10, PerPage: 10, OnEachSide: -1},
	}
	for _, p := range bad {
		if _, err := p.Elements(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Elements() for %+v error = %v, want ErrInvalidArgument", *p, err)
		}
	}
}

func TestPaginatorChange(t *testing.T) {
	var changes []int
	p := New(100)
	p.OnPageChange = func(page int) { changes = append(changes, page) }

	if p.Change(Element{Ellipsis: true}) {
		t.Error("Change(ellipsis) should be ignored")
	}
	if p.Change(Element{Page: 1}) {
		t.Error("Change(current page) should be ignored")
	}
	if p.Change(Element{Page: 11}) {
		t.Error("Change(out of range) should be ignored")
	}
	if !p.Change(Element{Page: 4}) {
		t.Error("Change(4) should move")
	}
	if !p.Next() || p.CurrentPage != 5 {
		t.Errorf("Next() moved to %d, want 5", p.CurrentPage)
	}
	if !p.Previous() || p.CurrentPage != 4 {
		t.Errorf("Previous() moved to %d, want 4", p.CurrentPage)
	}

	want := []int{4, 5, 4}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes[%d] = %d, want %d", i, changes[i], want[i])
		}
	}
}

func TestPaginatorBoundaries(t *testing.T) {
	p := New(30)
	if p.Previous() {
		t.Error("Previous() on first page should not move")
	}
	p.CurrentPage = 3
	if p.Next() {
		t.Error("Next() on last page should not move")
	}
	if p.OnFirstPage() {
		t.Error("OnFirstPage() on page 3 should be false")
	}
}
