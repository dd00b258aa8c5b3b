package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if start, end := p.VisibleRange(); start != 0 || end != 3 {
		t.Errorf("expected range 0-3, got %d-%d", start, end)
	}
	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}

	for range 3 {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("expected cursor 3 on page 2, got %d on page %d", p.Cursor(), p.CurrentPage())
	}

	if !p.NextPage() {
		t.Fatal("expected next page")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("expected range 6-7, got %d-%d", start, end)
	}
	if p.NextPage() {
		t.Error("expected no page after the last")
	}
	if p.CursorDown() {
		t.Error("expected cursor to stop at the last item")
	}

	if !p.PrevPage() || p.Cursor() != 3 {
		t.Errorf("expected cursor 3 after previous page, got %d", p.Cursor())
	}
	p.CursorUp()
	if p.CurrentPage() != 1 {
		t.Errorf("expected page 1, got %d", p.CurrentPage())
	}
}

func TestPaginator_SetTotalResetsCursor(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(5)
	p.CursorDown()
	p.CursorDown()

	p.SetTotal(1)
	if p.Cursor() != 0 || p.CurrentPage() != 1 {
		t.Errorf("expected reset cursor, got %d on page %d", p.Cursor(), p.CurrentPage())
	}
}

func TestPaginator_SetPageSizeKeepsCursorVisible(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(10)
	for range 5 {
		p.CursorDown()
	}

	p.SetPageSize(4)
	start, end := p.VisibleRange()
	if p.Cursor() < start || p.Cursor() >= end {
		t.Errorf("cursor %d outside visible range %d-%d", p.Cursor(), start, end)
	}
}

func TestPaginator_Empty(t *testing.T) {
	p := NewPaginator(0)
	if p.CursorDown() || p.CursorUp() {
		t.Error("expected no movement on an empty list")
	}
	if start, end := p.VisibleRange(); start != 0 || end != 0 {
		t.Errorf("expected empty range, got %d-%d", start, end)
	}
}
