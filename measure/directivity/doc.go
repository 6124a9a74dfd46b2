// Package directivity analyzes virtual-microphone pickup patterns by
// driving the ambisonic encode/decode round trip with unit sources
// swept over the sphere.
//
// It reports the classic microphone figures of merit (on-axis gain,
// front/back ratio, directivity factor and index) computed by
// quadrature over a direction grid, and an azimuthal harmonic spectrum
// of the horizontal polar response, which exposes the active suborders
// of the decoded pattern.
package directivity
