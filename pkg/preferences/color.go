package preferences

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#rrggbb", "#rgb" or "#rrggbbaa" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex formats the color as "#rrggbb", appending an alpha byte when the color
// is not fully opaque.
func (c Color) Hex() string {
	h := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A < 1 {
		h += fmt.Sprintf("%02x", uint8(math.Round(math.Max(c.A, 0)*255)))
	}
	return h
}

// valid reports whether every component is a finite number in [0, 1].
func (c Color) valid() bool {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// encodeColor produces the settings blob for c. It is the inverse of decodeColor.
func encodeColor(c Color) ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("color %+v has components outside [0, 1]", c)
	}
	return json.Marshal(c)
}

func decodeColor(blob []byte) (Color, error) {
	var c Color
	if err := json.Unmarshal(blob, &c); err != nil {
		return Color{}, fmt.Errorf("failed to decode color: %w", err)
	}
	if !c.valid() {
		return Color{}, fmt.Errorf("decoded color %+v has components outside [0, 1]", c)
	}
	return c, nil
}

// IsLight reports whether dark text reads better than light text on c.
func (c Color) IsLight() bool {
	l, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Lab()
	return l > 0.6
}
