package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	// FloorY is the world y of the floor the actors walk on.
	FloorY = 600
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
