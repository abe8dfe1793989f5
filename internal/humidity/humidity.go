// Package humidity implements the psychrometric math behind the advisor:
// saturation vapor pressure and constant-vapor-pressure projection of
// relative humidity onto a range of indoor temperatures.
package humidity

import "math"

// SaturationPressure returns the saturation vapor pressure of water, in
// pascals, at the given temperature. Magnus correlation over liquid water;
// strictly increasing and finite for any temperature weather can produce.
// The unit cancels in the projection ratio, so only the shape matters.
func SaturationPressure(celsius float64) float64 {
	return 610.94 * math.Exp(17.625*celsius/(celsius+243.04))
}

// VaporPressure returns the actual partial pressure of water vapor, in
// pascals, for air observed at tempC with relative humidity rhPct.
func VaporPressure(tempC, rhPct float64) float64 {
	return rhPct / 100 * SaturationPressure(tempC)
}

// Project computes the relative humidity, in percent, that air observed at
// (tempC, rhPct) would reach at each reference temperature, assuming its
// vapor pressure stays constant while the temperature changes. One value
// per reference temperature, same order.
//
// Results above 100 are returned as-is: they signal that the outdoor air
// would be supersaturated at that indoor temperature, i.e. opening the
// window would only add moisture. Rounding is left to the presentation
// layer.
func Project(tempC, rhPct float64, refs []float64) []float64 {
	vp := VaporPressure(tempC, rhPct)

	out := make([]float64, len(refs))
	for i, ref := range refs {
		out[i] = 100 * vp / SaturationPressure(ref)
	}
	return out
}
