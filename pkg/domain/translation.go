package domain

// Direction identifies a translation direction. Its string value is also the
// prompt file key.
type Direction string

const (
	DirectionEngRus Direction = "eng_rus"
	DirectionRusEng Direction = "rus_eng"
)

func (d Direction) Valid() bool {
	return d == DirectionEngRus || d == DirectionRusEng
}

// Text returns the human-readable direction for user-facing messages.
func (d Direction) Text() string {
	switch d {
	case DirectionEngRus:
		return "английского на русский"
	case DirectionRusEng:
		return "русского на английский"
	default:
		return ""
	}
}
