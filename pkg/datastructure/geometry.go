package datastructure

import (
	"math"
)

const (
	EPS = 1e-6
)

type Point struct {
	x, y float64
}

func NewPoint(x, y float64) Point {
	return Point{x, y}
}

func (p Point) GetX() float64 {
	return p.x
}

func (p Point) GetY() float64 {
	return p.y
}

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

// less than operator
func Lt(a, b float64) bool {
	return a+EPS < b
}

// greater than or equal than operator
func Ge(a, b float64) bool {
	return Le(b, a)
}

func Gt(a, b float64) bool {
	return Lt(b, a)
}

// less than or equal operator
func Le(a, b float64) bool {
	return a <= b+EPS
}

// PointInPolygon is the even-odd ray casting test: a horizontal ray is cast from p and
// the polygon edges it crosses are counted. polygon must not repeat its first vertex.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.y > p.y) != (pj.y > p.y) &&
			p.x < (pj.x-pi.x)*(p.y-pi.y)/(pj.y-pi.y)+pi.x {
			inside = !inside
		}
	}
	return inside
}
