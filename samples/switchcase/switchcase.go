// Package switchcase holds the switch dispatch samples. One table is
// dense and the other has holes, so a lowering may pick either a jump
// table or a compare chain.
package switchcase

// FakeFibonacci returns the value-th Fibonacci number for 0 <= value <= 6
// and 0 for anything else.
func FakeFibonacci(value int32) int32 {
	switch value {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 1
	case 3:
		return 2
	case 4:
		return 3
	case 5:
		return 5
	case 6:
		return 8
	default:
		return 0
	}
}

// SwitchWithHoles has no cases for 1, 5 and 9; those hit the default.
func SwitchWithHoles(value int32) int32 {
	switch value {
	case 0:
		return 0
	case 2:
		return 1
	case 3:
		return 2
	case 4:
		return 3
	case 6:
		return 5
	case 7:
		return 8
	case 8:
		return 9
	case 10:
		return 10
	case 11:
		return 11
	default:
		return 0
	}
}
