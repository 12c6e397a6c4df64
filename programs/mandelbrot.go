package programs

// mandelbrot iterates z = z² + c from z = 0.
func mandelbrot(c complex128, iterations int) (int, complex128) {
	n := 0
	z := complex(0, 0)
	for n < iterations && real(z)*real(z)+imag(z)*imag(z) <= bailout {
		z = z*z + c
		n++
	}
	return n, z
}
