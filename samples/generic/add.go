// Package generic holds the template instantiation sample: one generic
// Add and the two instantiations exported over the C ABI.
package generic

// Integers is a constraint for all integer types.
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Number is anything Add can be instantiated with.
type Number interface {
	Integers | Floats
}

func Add[T Number](a, b T) T {
	return a + b
}

// AddInt is Add instantiated with C int.
func AddInt(a, b int32) int32 {
	return Add[int32](a, b)
}

// AddDouble is Add instantiated with C double.
func AddDouble(a, b float64) float64 {
	return Add[float64](a, b)
}
