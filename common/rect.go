package common

// Rect is an axis-aligned box in world units. X/Y is the bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Top() float64 {
	return r.Y + r.Height
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
