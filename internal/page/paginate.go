// Package page provides generic windowing over an ordered list.
package page

// Page is one window of a paginated list. Indexes are 0-based;
// CurrentPage and TotalPages are 1-based.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	StartIndex  int
	EndIndex    int
	TotalItems  int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.CurrentPage < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.CurrentPage > 1 }

// Paginate windows items to the requested page. An empty list is still
// one page of zero items so "Page 1 of 1" stays well-defined, and the
// requested page is clamped into [1, TotalPages].
func Paginate[T any](items []T, pageSize, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := (len(items) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}

	current := requested
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		CurrentPage: current,
		TotalPages:  total,
		StartIndex:  start,
		EndIndex:    end,
		TotalItems:  len(items),
	}
}
