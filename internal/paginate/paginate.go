// Package paginate derives the visible page of a collection.
//
// Everything here is a pure function of (items, page size, page index); no
// state is kept between calls. Page indexes are 1-based.
package paginate

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 9

// Page is the visible slice of a collection plus the numbers needed to
// render a pagination control.
type Page[T any] struct {
	Items      []T
	Index      int
	Size       int
	Total      int
	TotalPages int
}

// ShowControl reports whether a pagination control should be rendered. A
// collection that fits on one page gets no control.
func (p Page[T]) ShowControl() bool {
	return p.Total > p.Size
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Index > 1
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Index < p.TotalPages
}

// First returns the 0-based offset of the first item on the page within the
// collection.
func (p Page[T]) First() int {
	return (p.Index - 1) * p.Size
}

// TotalPages returns ceil(size/pageSize).
func TotalPages(size, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if size <= 0 {
		return 0
	}
	return (size-1)/pageSize + 1
}

// Clamp forces index into [1, max(1, TotalPages(size, pageSize))].
func Clamp(index, size, pageSize int) int {
	last := max(1, TotalPages(size, pageSize))
	return min(max(index, 1), last)
}

// Paginate returns items[(index-1)*pageSize : index*pageSize], bounded to
// the collection. An index past the last page yields an empty page; an index
// below 1 is treated as 1. The returned Items share backing storage with
// items but cannot be appended into it.
func Paginate[T any](items []T, pageSize, index int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if index < 1 {
		index = 1
	}
	page := Page[T]{
		Index:      index,
		Size:       pageSize,
		Total:      len(items),
		TotalPages: TotalPages(len(items), pageSize),
		Items:      []T{},
	}
	// Compare page numbers first; (index-1)*pageSize overflows for huge
	// indexes.
	if index > page.TotalPages {
		return page
	}
	start := (index - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	page.Items = items[start:end:end]
	return page
}
