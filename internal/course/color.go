package course

// DefaultColor is used when no palette is configured.
const DefaultColor = "#ffffff"

// ColorMemo remembers the color given to each title, in first-seen order.
type ColorMemo struct {
	colors map[string]string
}

// NewColorMemo creates an empty memo.
func NewColorMemo() *ColorMemo {
	return &ColorMemo{colors: make(map[string]string)}
}

// Invalidate forgets every assignment; the next title seen gets the first color.
func (m *ColorMemo) Invalidate() {
	clear(m.colors)
}

// Len returns the number of distinct titles colored so far.
func (m *ColorMemo) Len() int {
	return len(m.colors)
}

// ColorAssigner maps titles to palette colors in first-seen order.
type ColorAssigner struct {
	memo *ColorMemo
}

// NewColorAssigner creates an assigner backed by memo.
func NewColorAssigner(memo *ColorMemo) *ColorAssigner {
	if memo == nil {
		memo = NewColorMemo()
	}
	return &ColorAssigner{memo: memo}
}

// ColorFor returns the color of s.Title, assigning palette[n % len(palette)]
// on first sight, where n is the number of titles seen so far.
func (a *ColorAssigner) ColorFor(s *Session, palette []string) string {
	if s == nil {
		return DefaultColor
	}
	if c, ok := a.memo.colors[s.Title]; ok {
		return c
	}
	if len(palette) == 0 {
		return DefaultColor
	}
	c := palette[len(a.memo.colors)%len(palette)]
	a.memo.colors[s.Title] = c
	return c
}

// Assign restarts the first-seen order and stamps every session in list order.
func (a *ColorAssigner) Assign(list []*Session, palette []string) {
	a.memo.Invalidate()
	for _, s := range list {
		s.Color = a.ColorFor(s, palette)
	}
}
