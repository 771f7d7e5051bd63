package model

// Number is the set of scalar types a Vec2 can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Vec2 is a 2D vector.
type Vec2[T Number] struct {
	X T
	Y T
}

type (
	IVec2 = Vec2[int]     // Signed grid or pixel coordinate.
	UVec2 = Vec2[uint32]  // Unsigned size or tileset cell.
	FVec2 = Vec2[float64] // Fractional position or factor.
)

// V2 builds a vector from its components.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat builds a vector with both components set to v.
func Splat[T Number](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// Cast converts every component of v to U.
func Cast[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Area returns X*Y.
func (v Vec2[T]) Area() T {
	return v.X * v.Y
}
