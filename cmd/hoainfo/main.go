// Command hoainfo prints ACN/SN3D Ambisonics encoding gains and
// virtual-microphone pattern figures.
//
// Usage:
//
//	hoainfo [flags]
//
// Without flags it prints the full 64-channel gain table for a source
// straight ahead.
//
// Examples:
//
//	hoainfo -azimuth 90
//	hoainfo -order 3 -azimuth 30 -elevation 45
//	hoainfo -polar -order 1 -pattern 0.5
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-hoa/ambisonic"
	"github.com/cwbudde/algo-hoa/measure/directivity"
)

func main() {
	azimuth := flag.Float64("azimuth", 0, "source azimuth in degrees (positive = left)")
	elevation := flag.Float64("elevation", 0, "source elevation in degrees (positive = up)")
	order := flag.Int("order", ambisonic.MaxOrder, "Ambisonics order (1..7)")
	polar := flag.Bool("polar", false, "print virtual-microphone polar response instead of gains")
	pattern := flag.Float64("pattern", 1, "virtual-microphone pattern (0 = omni, 1 = directional)")
	steps := flag.Int("steps", 16, "polar response azimuth steps")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hoainfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints ACN/SN3D Ambisonics gains and virtual-microphone pattern figures.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !validOrder(*order) {
		fmt.Fprintf(os.Stderr, "hoainfo: order must be in [%d, %d]: %d\n",
			ambisonic.MinOrder, ambisonic.MaxOrder, *order)
		os.Exit(2)
	}

	if *polar {
		if err := printPolar(*order, *pattern, *steps); err != nil {
			fmt.Fprintf(os.Stderr, "hoainfo: %v\n", err)
			os.Exit(1)
		}

		return
	}

	printGains(*order, radians(*azimuth), radians(*elevation))
}

func validOrder(order int) bool {
	return order >= ambisonic.MinOrder && order <= ambisonic.MaxOrder
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func printGains(order int, azimuth, elevation float64) {
	coeffs := ambisonic.Coefficients(azimuth, elevation)
	channels := ambisonic.ChannelCount(order)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACN\tdegree\tsuborder\tgain")

	for n := 0; n < channels; n++ {
		fmt.Fprintf(w, "%d\t%d\t%+d\t%+.6f\n",
			n, ambisonic.DegreeOf(n), ambisonic.SuborderOf(n), coeffs[n])
	}

	w.Flush()
}

func printPolar(order int, pattern float64, steps int) error {
	cfg := directivity.Config{Order: order, Pattern: pattern}

	res, err := directivity.Analyze(cfg)
	if err != nil {
		return err
	}

	ring, err := directivity.Ring(cfg, steps)
	if err != nil {
		return err
	}

	fmt.Printf("order %d, pattern %g\n", order, pattern)
	fmt.Printf("on-axis gain:      %.4f\n", res.OnAxisGain)
	fmt.Printf("front/back ratio:  %.2f dB\n", res.FrontBackRatioDB)
	fmt.Printf("directivity:       Q=%.2f (DI=%.2f dB)\n",
		res.DirectivityFactor, res.DirectivityIndexDB)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "azimuth\tresponse")

	for i, v := range ring {
		deg := 360 * float64(i) / float64(len(ring))
		fmt.Fprintf(w, "%.1f\t%+.4f\n", deg, v)
	}

	return w.Flush()
}
