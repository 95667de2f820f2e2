package domain

// HairColor is one of a closed set of hair colours.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// HairColors returns every variant in declaration order.
func HairColors() []HairColor {
	return []HairColor{
		HairColorWhite,
		HairColorBrown,
		HairColorBlack,
		HairColorBlonde,
		HairColorRed,
	}
}

// Valid reports whether c is one of the declared variants.
func (c HairColor) Valid() bool {
	for _, v := range HairColors() {
		if c == v {
			return true
		}
	}
	return false
}
