// Package cursor tracks a cursor and scroll offset over a list whose length
// and viewport height are supplied on each call.
package cursor

// Cursor holds the cursor row and the first visible row.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor that keeps margin rows around the cursor when scrolling.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta and scrolls to keep it visible.
// It is a no-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.EnsureVisible(listLen, height)
}

// Jump places the cursor at pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// EnsureVisible scrolls so the cursor sits inside the viewport with margin.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Scroll shifts the viewport by delta rows without moving the cursor,
// as a mouse wheel does.
func (c *Cursor) Scroll(delta, listLen, height int) {
	if height <= 0 {
		return
	}
	c.offset = clamp(c.offset+delta, max(listLen-height, 0))
}

// Set repositions the cursor after the list changed underneath it. Unlike
// Jump it keeps the viewport where it is unless the cursor left it.
func (c *Cursor) Set(pos, listLen, height int) {
	c.pos = pos
	c.ClampToBounds(listLen)
	if c.pos < c.offset || c.pos >= c.offset+height {
		c.EnsureVisible(listLen, height)
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list of listLen rows and
// reports whether it moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the visible rows as [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// RowAt maps a viewport line to a list index. The result may be >= listLen
// when the line is below the last row.
func (c Cursor) RowAt(line int) int {
	return c.offset + line
}

// Reset moves cursor and viewport back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleKey applies the common list motions and reports whether key was one:
// j/down, k/up, g/home, G/end, ctrl+d and ctrl+u (half pages).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d", "pgdown":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	return max(v, 0)
}
