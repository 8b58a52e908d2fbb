package device

import "strconv"

// Screen holds viewport metrics in CSS pixels.
type Screen struct {
	Width      int     `json:"width" yaml:"width"`
	Height     int     `json:"height" yaml:"height"`
	PixelRatio float64 `json:"pixel_ratio" yaml:"pixel_ratio"`
}

// ShortSide returns min(Width, Height).
func (s Screen) ShortSide() int { return min(s.Width, s.Height) }

// LongSide returns max(Width, Height).
func (s Screen) LongSide() int { return max(s.Width, s.Height) }

// Environment is a live client context: the values a browser would report
// through navigator and screen. A nil *Environment means no live context is
// available, which is the normal case on a server.
type Environment struct {
	// UserAgent is the ambient user agent, used when a call supplies none.
	UserAgent string
	Screen    Screen
	// TouchPoints is the maximum number of simultaneous touch points.
	TouchPoints int
	// TouchEvents reports whether touch events are supported.
	TouchEvents bool
}

// TouchCapable reports whether the environment accepts touch input.
func (e *Environment) TouchCapable() bool {
	if e == nil {
		return false
	}
	return e.TouchPoints > 0 || e.TouchEvents
}

func (e *Environment) screen() Screen {
	if e == nil {
		return Screen{}
	}
	return e.Screen
}

// Client hint headers read by EnvironmentFromHeaders, in lookup order.
var (
	viewportWidthHints  = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}
	viewportHeightHints = []string{"Sec-CH-Viewport-Height"}
	pixelRatioHints     = []string{"Sec-CH-DPR", "DPR"}
)

// ClientHints is the Accept-CH value asking browsers for the headers
// EnvironmentFromHeaders understands.
const ClientHints = "Sec-CH-Viewport-Width, Sec-CH-Viewport-Height, Sec-CH-DPR"

// EnvironmentFromHeaders builds an Environment from the User-Agent header and
// viewport client hints. Touch support is not exposed through headers and
// stays unset, so the prober treats the result as non-touch. It returns nil
// when h carries none of these headers.
func EnvironmentFromHeaders(h HeaderGetter) *Environment {
	if h == nil {
		return nil
	}

	env := Environment{UserAgent: h.Get("User-Agent")}
	env.Screen.Width = intHint(h, viewportWidthHints)
	env.Screen.Height = intHint(h, viewportHeightHints)
	env.Screen.PixelRatio = floatHint(h, pixelRatioHints)

	if env.UserAgent == "" && env.Screen == (Screen{}) {
		return nil
	}
	return &env
}

func intHint(h HeaderGetter, names []string) int {
	for _, name := range names {
		if v, err := strconv.Atoi(h.Get(name)); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

func floatHint(h HeaderGetter, names []string) float64 {
	for _, name := range names {
		if v, err := strconv.ParseFloat(h.Get(name), 64); err == nil && v > 0 {
			return v
		}
	}
	return 0
}
