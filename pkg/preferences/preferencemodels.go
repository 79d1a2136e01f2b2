// FILE: preferences/models.go

package preferences

// DefaultFontSize is used when no font size has been stored, or the stored value is 0.
const DefaultFontSize = 14

// White is the default background color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Color is an RGBA color with every component in the range [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Preferences holds the user's display settings.
type Preferences struct {
	FontSize        int
	BackgroundColor Color
}

// Defaults returns the preferences used before anything has been stored.
func Defaults() Preferences {
	return Preferences{
		FontSize:        DefaultFontSize,
		BackgroundColor: White,
	}
}
