package render

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/threadart/pkg/errors"
)

// HexColor is a color that unmarshals from "#RRGGBB" or "#RRGGBBAA"
// strings in TOML style files. Values are non-premultiplied.
type HexColor struct {
	color.NRGBA
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (c *HexColor) UnmarshalText(text []byte) error {
	s := string(text)
	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("invalid color %q (use #RRGGBB or #RRGGBBAA)", s)
	}
	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func rgba(r, g, b, a uint8) HexColor {
	return HexColor{color.NRGBA{R: r, G: g, B: b, A: a}}
}

// Style holds every visual knob of the renderer. Sizes suffixed "fraction
// of the frame" scale with the output resolution; widths are in pixels.
type Style struct {
	Title    string  `toml:"title"`
	ShowGrid bool    `toml:"show_grid"`
	GridStep float64 `toml:"grid_step"` // unit-square spacing of grid lines
	Margin   float64 `toml:"margin"`    // viewport margin, fraction of the smaller dimension

	Background HexColor `toml:"background"`
	Grid       HexColor `toml:"grid"`

	Thread      HexColor `toml:"thread"`
	ThreadWidth float64  `toml:"thread_width"` // pixels

	NailFill        HexColor `toml:"nail_fill"`
	NailStroke      HexColor `toml:"nail_stroke"`
	NailStrokeWidth float64  `toml:"nail_stroke_width"` // pixels
	NailRadius      float64  `toml:"nail_radius"`       // fraction of the frame
	Label           HexColor `toml:"label"`
	LabelSize       float64  `toml:"label_size"` // fraction of the frame

	Start             HexColor `toml:"start"`
	End               HexColor `toml:"end"`
	MarkerStroke      HexColor `toml:"marker_stroke"`
	MarkerStrokeWidth float64  `toml:"marker_stroke_width"` // pixels
	MarkerSize        float64  `toml:"marker_size"`         // fraction of the frame

	Text      HexColor `toml:"text"`
	TextSize  float64  `toml:"text_size"`  // fraction of the frame
	TitleSize float64  `toml:"title_size"` // fraction of the frame
}

// DefaultStyle returns the stock palette: semi-transparent blue thread,
// red nails with white index labels, green square start marker and orange
// triangle end marker on a white, lightly gridded background.
func DefaultStyle() Style {
	return Style{
		Title:    "Thread Art Visualization",
		ShowGrid: true,
		GridStep: 0.1,
		Margin:   0.05,

		Background: rgba(0xff, 0xff, 0xff, 0xff),
		Grid:       rgba(0xb0, 0xb0, 0xb0, 0x4d),

		Thread:      rgba(0x00, 0x00, 0xff, 0xb3),
		ThreadWidth: 1.5,

		NailFill:        rgba(0xff, 0x00, 0x00, 0xff),
		NailStroke:      rgba(0x00, 0x00, 0x00, 0xff),
		NailStrokeWidth: 2,
		NailRadius:      0.015,
		Label:           rgba(0xff, 0xff, 0xff, 0xff),
		LabelSize:       0.016,

		Start:             rgba(0x00, 0x80, 0x00, 0xff),
		End:               rgba(0xff, 0xa5, 0x00, 0xff),
		MarkerStroke:      rgba(0x00, 0x00, 0x00, 0xff),
		MarkerStrokeWidth: 1.5,
		MarkerSize:        0.045,

		Text:      rgba(0x20, 0x20, 0x20, 0xff),
		TextSize:  0.018,
		TitleSize: 0.028,
	}
}

// LoadStyle reads a TOML style file, overlaying it on the default style
// so partial files work. Unknown keys and out-of-range values are
// rejected to catch mistakes early. All failures are INVALID_PARAMETER
// errors.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidParameter, err, "load style %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidParameter,
			"unknown style key %q in %s", undecoded[0].String(), path)
	}
	if err := s.validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// validate rejects style values that would break the render geometry.
// Checks are written in negated form so NaN values fail them.
func (s Style) validate() error {
	if !(s.GridStep > 0) {
		return errors.New(errors.ErrCodeInvalidParameter,
			"grid_step must be positive, got %v", s.GridStep)
	}
	if !(s.Margin >= 0 && s.Margin < 0.5) {
		return errors.New(errors.ErrCodeInvalidParameter,
			"margin must be in [0, 0.5), got %v", s.Margin)
	}
	sizes := []struct {
		key   string
		value float64
	}{
		{"thread_width", s.ThreadWidth},
		{"nail_stroke_width", s.NailStrokeWidth},
		{"nail_radius", s.NailRadius},
		{"label_size", s.LabelSize},
		{"marker_stroke_width", s.MarkerStrokeWidth},
		{"marker_size", s.MarkerSize},
		{"text_size", s.TextSize},
		{"title_size", s.TitleSize},
	}
	for _, f := range sizes {
		if !(f.value >= 0) {
			return errors.New(errors.ErrCodeInvalidParameter,
				"%s must be non-negative, got %v", f.key, f.value)
		}
	}
	return nil
}
