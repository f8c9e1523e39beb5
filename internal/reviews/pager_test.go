package reviews

import "testing"

func TestPagerWindow(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)

	if got := p.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}
	if from, to := p.Bounds(); from != 0 || to != 5 {
		t.Fatalf("page 1 bounds = [%d, %d)", from, to)
	}

	p.Next()
	if from, to := p.Bounds(); from != 5 || to != 10 {
		t.Fatalf("page 2 bounds = [%d, %d)", from, to)
	}

	p.Next()
	if from, to := p.Bounds(); from != 10 || to != 12 {
		t.Fatalf("page 3 bounds = [%d, %d)", from, to)
	}

	// Past the last page nothing moves.
	p.Next()
	if p.Page() != 3 {
		t.Fatalf("page = %d after Next on last page", p.Page())
	}
}

func TestPagerPrevStopsAtFirst(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)

	p.Prev()
	if p.Page() != 1 {
		t.Fatalf("page = %d after Prev on page 1", p.Page())
	}
}

func TestPagerEmptyListHasOnePage(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(0)

	if got := p.TotalPages(); got != 1 {
		t.Fatalf("TotalPages = %d, want 1", got)
	}
	if from, to := p.Bounds(); from != 0 || to != 0 {
		t.Fatalf("bounds = [%d, %d)", from, to)
	}
}

func TestPagerSetTotalClampsPage(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)
	p.Next()
	p.Next()

	// A reload that shrinks the list pulls the page back into range.
	p.SetTotal(6)
	if p.Page() != 2 {
		t.Fatalf("page = %d, want 2", p.Page())
	}
	p.SetTotal(0)
	if p.Page() != 1 {
		t.Fatalf("page = %d, want 1", p.Page())
	}
}

func TestPagerReset(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(20)
	p.Next()
	p.Next()
	p.Reset()
	if p.Page() != 1 {
		t.Fatalf("page = %d after Reset", p.Page())
	}
}

func TestPagerBadPageSize(t *testing.T) {
	p := NewPager(0)
	p.SetTotal(3)
	if got := p.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3 with page size clamped to 1", got)
	}
}
