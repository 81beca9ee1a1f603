package mapgen

import "math"

// falloffValue returns how much to subtract from the noise value at a grid
// sample, pushing chunk edges toward zero height. x and y are sample indices
// in a size×size grid. The transfer function v^a / (v^a + (b - b*v)^a) keeps
// the interior untouched and rolls off sharply near the edges.
func falloffValue(x, y, size int) float32 {
	nx := float64(x)/float64(size-1)*2 - 1 // [-1,1]
	ny := float64(y)/float64(size-1)*2 - 1
	v := math.Max(math.Abs(nx), math.Abs(ny))

	const a = 3.0
	const b = 2.2
	va := math.Pow(v, a)
	return float32(va / (va + math.Pow(b-b*v, a)))
}
