package vector

// Vector4F matches the C layout of
//
//	typedef struct { float x, y, z, w; } Vector4F;
type Vector4F struct {
	X, Y, Z, W float32
}

// -----------------------------------------------------------------------------

func Vector4FAdd(left, right Vector4F) Vector4F {
	return Vector4F{
		X: left.X + right.X,
		Y: left.Y + right.Y,
		Z: left.Z + right.Z,
		W: left.W + right.W,
	}
}

// Vector4FPointerAdd dereferences both operands and delegates to Vector4FAdd.
func Vector4FPointerAdd(left, right *Vector4F) Vector4F {
	return Vector4FAdd(*left, *right)
}

// Vector4FAdd3 sums its operands component-wise, left to right.
func Vector4FAdd3(v1, v2, v3 Vector4F) Vector4F {
	return Vector4F{
		X: v1.X + v2.X + v3.X,
		Y: v1.Y + v2.Y + v3.Y,
		Z: v1.Z + v2.Z + v3.Z,
		W: v1.W + v2.W + v3.W,
	}
}

func Vector4FAdd4(v1, v2, v3, v4 Vector4F) Vector4F {
	return Vector4F{
		X: v1.X + v2.X + v3.X + v4.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y,
		Z: v1.Z + v2.Z + v3.Z + v4.Z,
		W: v1.W + v2.W + v3.W + v4.W,
	}
}

func Vector4FAdd5(v1, v2, v3, v4, v5 Vector4F) Vector4F {
	return Vector4F{
		X: v1.X + v2.X + v3.X + v4.X + v5.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y + v5.Y,
		Z: v1.Z + v2.Z + v3.Z + v4.Z + v5.Z,
		W: v1.W + v2.W + v3.W + v4.W + v5.W,
	}
}

// -----------------------------------------------------------------------------

func Vector4FNegate(value Vector4F) Vector4F {
	return Vector4F{
		X: -value.X,
		Y: -value.Y,
		Z: -value.Z,
		W: -value.W,
	}
}
