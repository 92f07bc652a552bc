package rays3d

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Color stores RGB components; each should be in [0,1].
type Color struct {
	R, G, B Real
}

// Named colors.
var (
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Yellow = Color{1, 1, 0}
)

var namedColors = map[string]Color{
	"black":  Black,
	"white":  White,
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"yellow": Yellow,
}

// clamp01 clamps each channel to [0,1].
func (c Color) clamp01() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// UnmarshalJSON accepts {"r":..,"g":..,"b":..}, a color name ("red") or a hex string ("#ff8000", "f80").
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	type rgb Color
	var v rgb
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("color must be an object, a name or a hex string: %w", err)
	}
	*c = Color(v)
	return nil
}

// ParseColor resolves a color name or a 3/6 digit hex string, with or without '#'.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return Color{
		R: Real((n>>16)&0xff) / 255,
		G: Real((n>>8)&0xff) / 255,
		B: Real(n&0xff) / 255,
	}, nil
}
