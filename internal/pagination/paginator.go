package pagination

const (
	DefaultPerPage    = 10
	DefaultOnEachSide = 3
)

// Paginator holds the state a pagination control renders from.
type Paginator struct {
	Total       int
	PerPage     int
	CurrentPage int
	OnEachSide  int

	// OnPageChange is called with the target page whenever Change,
	// Previous or Next moves to another page.
	OnPageChange func(page int)
}

// New returns a paginator for total items with the default page size and
// neighbor radius, positioned on the first page.
func New(total int) *Paginator {
	return &Paginator{
		Total:       total,
		PerPage:     DefaultPerPage,
		CurrentPage: 1,
		OnEachSide:  DefaultOnEachSide,
	}
}

// Validate rejects inputs that would produce nonsensical ranges.
func (p *Paginator) Validate() error {
	if p.Total < 0 {
		return &InvalidArgumentError{Field: "total", Value: p.Total, Reason: "must not be negative"}
	}
	if p.PerPage <= 0 {
		return &InvalidArgumentError{Field: "per page", Value: p.PerPage, Reason: "must be positive"}
	}
	if p.OnEachSide < 0 {
		return &InvalidArgumentError{Field: "on each side", Value: p.OnEachSide, Reason: "must not be negative"}
	}
	return nil
}

// Page returns the current page clamped to a minimum of 1.
func (p *Paginator) Page() int {
	if p.CurrentPage < 1 {
		return 1
	}
	return p.CurrentPage
}

// LastPage is ceil(Total / PerPage), or 0 when there are no items.
func (p *Paginator) LastPage() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total-1)/p.PerPage + 1
}

// From is the 1-based index of the first item on the current page,
// or 0 when there are no items.
func (p *Paginator) From() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Page()-1)*p.PerPage + 1
}

// To is the 1-based index of the last item on the current page.
func (p *Paginator) To() int {
	return min(p.Page()*p.PerPage, max(p.Total, 0))
}

func (p *Paginator) OnFirstPage() bool {
	return p.Page() <= 1
}

func (p *Paginator) HasMorePages() bool {
	return p.Page() < p.LastPage()
}

// HasPages reports whether there is anything to paginate.
func (p *Paginator) HasPages() bool {
	return p.Page() != 1 || p.HasMorePages()
}

// Window computes the page window for the current state.
func (p *Paginator) Window() (Window, error) {
	if err := p.Validate(); err != nil {
		return Window{}, err
	}
	return Compute(p.Page(), p.LastPage(), p.OnEachSide)
}

// Elements returns the flattened page window for display.
func (p *Paginator) Elements() ([]Element, error) {
	w, err := p.Window()
	if err != nil {
		return nil, err
	}
	return Flatten(w, p.Page()), nil
}

// Change moves to the page of e. Ellipses, the current page and pages
// outside [1, LastPage] are ignored. It reports whether the page changed.
func (p *Paginator) Change(e Element) bool {
	if e.Ellipsis {
		return false
	}
	return p.GoTo(e.Page)
}

// GoTo moves to page and fires OnPageChange.
func (p *Paginator) GoTo(page int) bool {
	if page < 1 || page > p.LastPage() || page == p.Page() {
		return false
	}
	p.CurrentPage = page
	if p.OnPageChange != nil {
		p.OnPageChange(page)
	}
	return true
}

func (p *Paginator) Previous() bool {
	return p.GoTo(p.Page() - 1)
}

func (p *Paginator) Next() bool {
	return p.GoTo(p.Page() + 1)
}
