package phoneset

// BoundaryTone is a symbolic ToBI-style boundary tone label used to mark
// intonational phrase edges.
type BoundaryTone string

const (
	ToneLL BoundaryTone = "L-L%" // falling terminal
	ToneLH BoundaryTone = "L-H%" // low-rising terminal
	ToneHH BoundaryTone = "H-H%" // high-rising terminal
	ToneHL BoundaryTone = "H-L%" // plateau terminal
	ToneL  BoundaryTone = "L-"   // low phrase accent
	ToneH  BoundaryTone = "H-"   // high phrase accent
)

// boundaryTones is the closed label set; IDs are positions in this slice.
var boundaryTones = []BoundaryTone{
	ToneLL, ToneLH, ToneHH, ToneHL, ToneL, ToneH,
}

var toneIDs = func() map[BoundaryTone]int {
	m := make(map[BoundaryTone]int, len(boundaryTones))
	for i, t := range boundaryTones {
		m[t] = i
	}
	return m
}()

// ToneID maps a boundary-tone label to its numeric ID.
func ToneID(label BoundaryTone) (int, bool) {
	id, ok := toneIDs[label]
	return id, ok
}

// ToneLabel maps a numeric ID back to its boundary-tone label.
func ToneLabel(id int) (BoundaryTone, bool) {
	if id < 0 || id >= len(boundaryTones) {
		return "", false
	}
	return boundaryTones[id], true
}

// AllBoundaryTones returns the complete boundary-tone label set in ID order.
func AllBoundaryTones() []BoundaryTone {
	tones := make([]BoundaryTone, len(boundaryTones))
	copy(tones, boundaryTones)
	return tones
}
