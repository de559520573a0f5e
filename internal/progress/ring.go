// Package progress holds the indicator math for the boot splash: the
// circular ring offset and the bouncing loading label.
package progress

// Circumference of the progress ring in dash units. The ring is drawn
// fully dashed and revealed by shrinking the dash offset toward zero.
const Circumference = 440.0

// DashOffset maps a progress fraction to the ring's stroke dash offset.
// Fraction 0 leaves the ring hidden (full offset), fraction 1 reveals it
// completely. Non-finite fractions pass through, callers tolerate them
// when the expected total is unknown.
func DashOffset(fraction float64) float64 {
	return Circumference - Circumference*fraction
}
