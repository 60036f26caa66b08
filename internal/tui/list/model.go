package listview

import "strings"

// RenderFunc renders one item. width is the list width in columns.
type RenderFunc[T any] func(item T, selected bool, width int) string

// Model is a cursor over items with a window of Height entries.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]

	cursor int
	offset int

	// height is the number of entries visible at once; 0 shows all.
	height int
	width  int
}

// New creates an empty list.
func New[T any](render RenderFunc[T]) *Model[T] {
	return &Model[T]{render: render}
}

// SetItems replaces the items and moves the cursor to the first entry.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor = 0
	m.offset = 0
}

// SetSize sets the width in columns and the window height in entries.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 0)
	m.scrollToCursor()
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the selected index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor, clamped to the items.
func (m *Model[T]) SetCursor(i int) {
	switch {
	case len(m.items) == 0 || i < 0:
		m.cursor = 0
	case i >= len(m.items):
		m.cursor = len(m.items) - 1
	default:
		m.cursor = i
	}
	m.scrollToCursor()
}

// Up moves the cursor up one entry.
func (m *Model[T]) Up() { m.SetCursor(m.cursor - 1) }

// Down moves the cursor down one entry.
func (m *Model[T]) Down() { m.SetCursor(m.cursor + 1) }

// Top moves the cursor to the first entry.
func (m *Model[T]) Top() { m.SetCursor(0) }

// Bottom moves the cursor to the last entry.
func (m *Model[T]) Bottom() { m.SetCursor(len(m.items) - 1) }

// Selected returns the item under the cursor.
func (m *Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.cursor], true
}

// Window returns the visible index range [from, to).
func (m *Model[T]) Window() (int, int) {
	if m.height == 0 {
		return 0, len(m.items)
	}
	return m.offset, min(m.offset+m.height, len(m.items))
}

func (m *Model[T]) scrollToCursor() {
	if m.height == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(0, min(m.offset, len(m.items)-m.height))
}

// View renders the visible entries, one per block.
func (m *Model[T]) View() string {
	from, to := m.Window()
	blocks := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		blocks = append(blocks, m.render(m.items[i], i == m.cursor, m.width))
	}
	return strings.Join(blocks, "\n")
}
