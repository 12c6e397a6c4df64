package programs

import "github.com/go-gl/mathgl/mgl64"

// julia iterates z = z² + c starting from the plane point z.
func julia(z complex128, c mgl64.Vec2, iterations int) (int, complex128) {
	n := 0
	k := complex(c[0], c[1])
	for n < iterations && real(z)*real(z)+imag(z)*imag(z) <= bailout {
		z = z*z + k
		n++
	}
	return n, z
}
