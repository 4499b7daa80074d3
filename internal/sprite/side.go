package sprite

// Side selects the front or back picture of a species.
type Side uint8

// sprite sides.
const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}
