// Package ambisonic provides higher-order Ambisonics gain computation,
// single-source encoding and virtual-microphone decoding for degrees 0
// through 7 (64 channels) in ACN channel order with SN3D normalization.
//
// Included components:
//   - Coefficients: the closed-form ACN/SN3D spherical-harmonic gain table.
//   - Encoder: projects a mono sample onto an N-channel HOA bundle.
//   - VirtualMic: renders a steerable omni-to-dipole pickup from a bundle.
//
// Angles follow the ISO-2631-aligned frame: X points front, Y left and
// Z up. Azimuth 0 is straight ahead and increases toward the left;
// elevation is 0 on the horizon and +pi/2 at the zenith. All operations
// are pure functions of their inputs, stateless across samples and safe
// for concurrent use.
package ambisonic
