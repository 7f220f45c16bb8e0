// Package vector holds the small fixed-size float vector samples. The
// structs are passed and returned by value across the C ABI, so their
// field order and width are part of the interface.
package vector

// Vector2F matches the C layout of
//
//	typedef struct { float x, y; } Vector2F;
type Vector2F struct {
	X, Y float32
}

// -----------------------------------------------------------------------------

func Vector2FAdd(left, right Vector2F) Vector2F {
	return Vector2F{
		X: left.X + right.X,
		Y: left.Y + right.Y,
	}
}

// Vector2FPointerAdd dereferences both operands and delegates to Vector2FAdd.
func Vector2FPointerAdd(left, right *Vector2F) Vector2F {
	return Vector2FAdd(*left, *right)
}

// Vector2FAdd3 sums its operands component-wise, left to right.
func Vector2FAdd3(v1, v2, v3 Vector2F) Vector2F {
	return Vector2F{
		X: v1.X + v2.X + v3.X,
		Y: v1.Y + v2.Y + v3.Y,
	}
}

func Vector2FAdd4(v1, v2, v3, v4 Vector2F) Vector2F {
	return Vector2F{
		X: v1.X + v2.X + v3.X + v4.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y,
	}
}

func Vector2FAdd5(v1, v2, v3, v4, v5 Vector2F) Vector2F {
	return Vector2F{
		X: v1.X + v2.X + v3.X + v4.X + v5.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y + v5.Y,
	}
}
