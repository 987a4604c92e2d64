package order

// Kind identifies an order variant.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	National
	International
	Hazardous
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:   "Unknown",
		National:      "National",
		International: "International",
		Hazardous:     "Hazardous",
	}
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
