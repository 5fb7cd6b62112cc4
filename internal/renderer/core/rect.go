package core

// Rect is a screen rectangle. X and Y are the top-left cell.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r has no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.Width-2*n, r.Height-2*n)
}

// Intersect returns the overlap of r and o, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Centered returns a rectangle of percentX by percentY of r, centered in r.
func (r Rect) Centered(percentX, percentY int) Rect {
	w := r.Width * percentX / 100
	h := r.Height * percentY / 100
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// SplitBottom removes n rows from the bottom of r and returns the
// remaining top part and the bottom strip.
func (r Rect) SplitBottom(n int) (top, bottom Rect) {
	n = min(max(n, 0), r.Height)
	top = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - n}
	bottom = Rect{X: r.X, Y: r.Y + r.Height - n, Width: r.Width, Height: n}
	return top, bottom
}
