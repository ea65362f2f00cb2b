package mandel

// MaxIter caps the escape-time iteration. Points reaching it are treated as
// members of the set.
const MaxIter = 64

// CountIterations iterates z = z*z + c from z = 0 until |z| >= 2 or MaxIter
// steps have been made, and returns the number of steps.
func CountIterations(c Point) uint {
	var zr, zi float64
	var n uint
	for zr*zr+zi*zi < 4 && n < MaxIter {
		zr, zi = zr*zr-zi*zi+c.X, 2*zr*zi+c.Y
		n++
	}
	return n
}
