// Package pagination computes which page links a pagination control shows.
//
// Compute produces a Window of up to three blocks (first, slider, last) and
// Flatten turns it into the display sequence with "..." markers between
// blocks that are not adjacent.
package pagination

import (
	"fmt"
	"strconv"
)

// MaxWindowPages bounds how many page numbers a single Window may list.
const MaxWindowPages = 1 << 16

// Window is the set of page numbers to display, split into blocks.
// A nil block is absent.
type Window struct {
	First  []int `json:"first"`
	Slider []int `json:"slider"`
	Last   []int `json:"last"`
}

// IsEmpty reports whether the window has no pages at all.
func (w Window) IsEmpty() bool {
	return len(w.First) == 0 && len(w.Slider) == 0 && len(w.Last) == 0
}

// Compute returns the page window for currentPage out of lastPage, showing
// onEachSide links around the current page.
//
// Below onEachSide*2+8 pages everything fits in First. Otherwise the window
// is two boundary pages on each end plus a slider around the current page,
// collapsed into First or Last when the current page is near an edge.
//
// A window that would list more than MaxWindowPages pages is rejected with
// an InvalidArgumentError instead of being allocated.
func Compute(currentPage, lastPage, onEachSide int) (Window, error) {
	if currentPage < 0 {
		return Window{}, &InvalidArgumentError{Field: "current page", Value: currentPage, Reason: "must not be negative"}
	}
	if lastPage < 0 {
		return Window{}, &InvalidArgumentError{Field: "last page", Value: lastPage, Reason: "must not be negative"}
	}
	if onEachSide < 0 {
		return Window{}, &InvalidArgumentError{Field: "on each side", Value: onEachSide, Reason: "must not be negative"}
	}

	// A single page needs no links.
	if lastPage <= 1 {
		return Window{}, nil
	}

	// lastPage < onEachSide*2+8, rearranged so it cannot overflow.
	if lastPage < 8 || onEachSide > (lastPage-8)/2 {
		if lastPage > MaxWindowPages {
			return Window{}, &InvalidArgumentError{Field: "last page", Value: lastPage, Reason: fmt.Sprintf("window would list more than %d pages", MaxWindowPages)}
		}
		return Window{First: pageRange(1, lastPage)}, nil
	}

	// onEachSide <= (lastPage-8)/2 from here on, so none of the sums below
	// can exceed lastPage.
	if onEachSide > (MaxWindowPages-5)/2 {
		return Window{}, &InvalidArgumentError{Field: "on each side", Value: onEachSide, Reason: fmt.Sprintf("window would list more than %d pages", MaxWindowPages)}
	}

	size := onEachSide + 4

	switch {
	case currentPage <= size:
		return Window{
			First: pageRange(1, size+onEachSide),
			Last:  finish(lastPage),
		}, nil
	case currentPage > lastPage-size:
		return Window{
			First: start(),
			Last:  pageRange(lastPage-(size+onEachSide-1), lastPage),
		}, nil
	}

	return Window{
		First:  start(),
		Slider: pageRange(currentPage-onEachSide, currentPage+onEachSide),
		Last:   finish(lastPage),
	}, nil
}

func start() []int {
	return pageRange(1, 2)
}

func finish(lastPage int) []int {
	return pageRange(lastPage-1, lastPage)
}

// pageRange returns [from..to] inclusive, or nil when to < from.
func pageRange(from, to int) []int {
	if to < from {
		return nil
	}
	r := make([]int, to-from+1)
	for i := range r {
		r[i] = from + i
	}
	return r
}

// Element is one entry of a flattened window: a page link or an ellipsis.
type Element struct {
	Page     int
	Ellipsis bool
	Active   bool
}

// Ellipsis is the marker shown for a gap between blocks.
const Ellipsis = "..."

func (e Element) String() string {
	if e.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(e.Page)
}

// Flatten concatenates the window blocks into a display sequence.
// Adjacency is checked by value: a single ellipsis is inserted only where
// consecutive pages differ by more than one, and pages already emitted by an
// earlier block are skipped. The element matching currentPage is marked Active.
func Flatten(w Window, currentPage int) []Element {
	var out []Element
	prev := 0
	for _, block := range [][]int{w.First, w.Slider, w.Last} {
		for _, page := range block {
			if page <= prev {
				continue
			}
			if prev > 0 && page > prev+1 {
				out = append(out, Element{Ellipsis: true})
			}
			out = append(out, Element{Page: page, Active: page == currentPage})
			prev = page
		}
	}
	return out
}

// Strings renders elements with their String form.
func Strings(elems []Element) []string {
	s := make([]string, len(elems))
	for i, e := range elems {
		s[i] = e.String()
	}
	return s
}
