package testutil

import "math"

// Direction is an azimuth/elevation pair in radians.
type Direction struct {
	Azimuth   float64
	Elevation float64
}

// DirectionGrid returns a deterministic grid of directions covering the
// sphere: azSteps azimuths spanning (-pi, pi] crossed with elSteps
// elevations spanning [-pi/2, pi/2], poles included.
func DirectionGrid(azSteps, elSteps int) []Direction {
	if azSteps < 1 {
		azSteps = 1
	}

	if elSteps < 2 {
		elSteps = 2
	}

	grid := make([]Direction, 0, azSteps*elSteps)

	for i := 0; i < azSteps; i++ {
		az := -math.Pi + 2*math.Pi*float64(i+1)/float64(azSteps)

		for j := 0; j < elSteps; j++ {
			el := -math.Pi/2 + math.Pi*float64(j)/float64(elSteps-1)
			grid = append(grid, Direction{Azimuth: az, Elevation: el})
		}
	}

	return grid
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}
