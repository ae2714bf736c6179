package chess

// Path is a movement pattern: a direction and whether it may be applied
// repeatedly (sliding pieces) or only once.
type Path struct {
	DX     int
	DY     int
	Repeat bool
}

// Step creates a single-application path.
func Step(dx, dy int) Path {
	return Path{DX: dx, DY: dy}
}

// Ray creates a repeating path.
func Ray(dx, dy int) Path {
	return Path{DX: dx, DY: dy, Repeat: true}
}

// mirror flips the rank direction, turning a White pattern into Black's.
func (p Path) mirror() Path {
	return Path{DX: p.DX, DY: -p.DY, Repeat: p.Repeat}
}
