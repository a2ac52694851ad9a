package noise

// LinearInterp blends n0 and n1 by a, where a is expected in [0, 1].
func LinearInterp(n0, n1, a float64) float64 {
	return (1.0-a)*n0 + a*n1
}

// CubicInterp performs cubic interpolation between n1 and n2 using n0 and n3
// as the outer control values. a is the position between n1 and n2.
func CubicInterp(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1
	return p*a*a*a + q*a*a + r*a + s
}

// SCurve3 maps a onto a cubic s-curve: 3a² - 2a³.
func SCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// SCurve5 maps a onto a quintic s-curve: 6a⁵ - 15a⁴ + 10a³.
func SCurve5(a float64) float64 {
	a3 := a * a * a
	a4 := a3 * a
	a5 := a4 * a
	return 6.0*a5 - 15.0*a4 + 10.0*a3
}

// ClampInt restricts v to [lower, upper].
func ClampInt(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
