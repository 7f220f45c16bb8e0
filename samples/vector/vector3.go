package vector

// Vector3F matches the C layout of
//
//	typedef struct { float x, y, z; } Vector3F;
type Vector3F struct {
	X, Y, Z float32
}

// -----------------------------------------------------------------------------

func Vector3FAdd(left, right Vector3F) Vector3F {
	return Vector3F{
		X: left.X + right.X,
		Y: left.Y + right.Y,
		Z: left.Z + right.Z,
	}
}

// Vector3FPointerAdd dereferences both operands and delegates to Vector3FAdd.
func Vector3FPointerAdd(left, right *Vector3F) Vector3F {
	return Vector3FAdd(*left, *right)
}

// Vector3FAdd3 sums its operands component-wise, left to right.
func Vector3FAdd3(v1, v2, v3 Vector3F) Vector3F {
	return Vector3F{
		X: v1.X + v2.X + v3.X,
		Y: v1.Y + v2.Y + v3.Y,
		Z: v1.Z + v2.Z + v3.Z,
	}
}

func Vector3FAdd4(v1, v2, v3, v4 Vector3F) Vector3F {
	return Vector3F{
		X: v1.X + v2.X + v3.X + v4.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y,
		Z: v1.Z + v2.Z + v3.Z + v4.Z,
	}
}

func Vector3FAdd5(v1, v2, v3, v4, v5 Vector3F) Vector3F {
	return Vector3F{
		X: v1.X + v2.X + v3.X + v4.X + v5.X,
		Y: v1.Y + v2.Y + v3.Y + v4.Y + v5.Y,
		Z: v1.Z + v2.Z + v3.Z + v4.Z + v5.Z,
	}
}
