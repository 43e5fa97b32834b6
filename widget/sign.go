package widget

type Sign string

const (
	Positive Sign = "positive"
	Negative Sign = "negative"
	Neutral  Sign = "neutral"
)

func SignOf(v float64) Sign {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return Neutral
	}
}

// Class is the CSS class the count button carries. Neutral has none.
func (s Sign) Class() string {
	if s == Neutral {
		return ""
	}
	return string(s)
}
