package noise

import "math"

// vectorCount is the number of gradient vectors in the lattice table.
const vectorCount = 256

// randomVectors holds vectorCount unit vectors packed as x, y, z, pad.
var randomVectors = buildVectorTable()

// buildVectorTable spreads vectorCount points evenly over the unit sphere
// along a golden-angle spiral, then shuffles them with a fixed xorshift
// sequence so that neighbouring hash values do not map to neighbouring
// directions.
func buildVectorTable() [vectorCount * 4]float64 {
	var table [vectorCount * 4]float64

	order := make([]int, vectorCount)
	for i := range order {
		order[i] = i
	}
	state := uint32(0x9e3779b9)
	for i := vectorCount - 1; i > 0; i-- {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		j := int(state % uint32(i+1))
		order[i], order[j] = order[j], order[i]
	}

	goldenAngle := math.Pi * (3.0 - math.Sqrt(5.0))
	for i := 0; i < vectorCount; i++ {
		y := 1.0 - (float64(i)+0.5)*2.0/vectorCount
		r := math.Sqrt(1.0 - y*y)
		theta := goldenAngle * float64(i)
		slot := order[i] * 4
		table[slot] = r * math.Cos(theta)
		table[slot+1] = y
		table[slot+2] = r * math.Sin(theta)
	}
	return table
}
