package reviews

// Pager is a 1-based fixed-size window over a list loaded in full.
// Navigating past either edge is a no-op.
type Pager struct {
	pageSize int
	page     int
	total    int
}

// NewPager creates a pager positioned on page 1
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Pager{pageSize: pageSize, page: 1}
}

// SetTotal records the list length after a reload and clamps the current
// page back into range.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Page returns the current page number
func (p *Pager) Page() int { return p.page }

// TotalPages returns the page count; an empty list still has one page
func (p *Pager) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Next advances one page unless already on the last
func (p *Pager) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

// Prev goes back one page unless already on the first
func (p *Pager) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// Reset jumps back to page 1
func (p *Pager) Reset() { p.page = 1 }

// Bounds returns the half-open [from, to) index range of the current page
// for a list of the recorded total length.
func (p *Pager) Bounds() (int, int) {
	from := (p.page - 1) * p.pageSize
	to := from + p.pageSize
	if to > p.total {
		to = p.total
	}
	if from > p.total {
		from = p.total
	}
	return from, to
}
