package gamemath

// StackBand describes how close a rider's feet must be to a support's top,
// and how far it must overlap horizontally, to count as standing on it.
type StackBand struct {
	Above  float64 // feet may hover this far above the top
	Below  float64 // feet may sink this far below the top
	Margin float64 // required horizontal overlap on either side
}

// Rides reports whether rider (moving with vertical velocity vy) is standing
// on support under band.
func Rides(rider, support Rect, vy float64, band StackBand) bool {
	if vy < 0 {
		return false
	}
	feet := rider.Bottom()
	if feet < support.Y-band.Above || feet > support.Y+band.Below {
		return false
	}
	return rider.Right() > support.X+band.Margin &&
		rider.X < support.Right()-band.Margin
}

// SnapOnto returns the y that puts rider exactly on top of support.
func SnapOnto(rider, support Rect) float64 {
	return support.Y - rider.H
}
