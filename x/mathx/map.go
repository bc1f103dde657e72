package mathx

// MapLinear maps x from [inMin,inMax] onto [outMin,outMax] with 64-bit
// intermediates and truncating division. It does not clamp: inputs outside
// the domain extrapolate along the same line.
// inMax == inMin returns outMin.
func MapLinear(x, inMin, inMax, outMin, outMax int64) int64 {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
