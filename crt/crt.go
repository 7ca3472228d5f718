package crt

// SeparateChaining - Collision Resolution Technique where each bucket holds a single linked chain of entries
const SeparateChaining int = 1

// LinearProbing - Collision Resolution Technique where colliding entries probe forward, one slot at a time,
// until a landing slot is found. Deleted entries are left as tombstones.
const LinearProbing int = 2

// Name - Returns a printable name for a collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return "Unknown"
	}
}
