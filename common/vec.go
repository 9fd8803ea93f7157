package common

import "fmt"

// Vec2 is a world-space point with Y pointing up.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
