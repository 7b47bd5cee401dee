package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size character buffer the climber draws its frame into.
// The platform layer turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major, width*height
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the screen dimensions. The overlapping top-left area keeps
// its content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blankCell
	}
	keepW := min(width, s.width)
	for y := range min(height, s.height) {
		copy(next[y*width:y*width+keepW], s.cells[y*s.width:y*s.width+keepW])
	}
	s.cells, s.width, s.height = next, width, height
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places a default-colored rune. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

// SetWithColor places a colored rune. Out-of-bounds writes are dropped.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes colored text starting at (x, y), clipped to the screen.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetWithColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text horizontally centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawRect fills r with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawHLine(r.X, y, r.W, fill, ColorDefault)
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	s.DrawHLine(left+1, top, r.W-2, '─', ColorDefault)
	s.DrawHLine(left+1, bottom, r.W-2, '─', ColorDefault)
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawHLine draws length copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := range max(length, 0) {
		s.SetWithColor(x+i, y, r, c)
	}
}

// String returns the screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.width + 1) * s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

// Row returns row y as plain text. Rows outside the screen are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	s.writeRow(&sb, y)
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
}
