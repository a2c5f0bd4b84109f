package fluentkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errors "github.com/agilira/go-errors"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Theme holds the visual defaults applied to newly created widgets.
type Theme struct {
	FontSize        float64
	TextColor       uint32
	BackgroundColor uint32
	AccentColor     uint32
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		FontSize:        14,
		TextColor:       0x1A1A1AFF,
		BackgroundColor: 0xFFFFFFFF,
		AccentColor:     0x3B82F6FF,
	}
}

// activeTheme seeds property defaults at widget construction. Existing
// widgets are not restyled when the theme changes.
var activeTheme = DefaultTheme()

// ApplyTheme makes t the active theme for subsequently created widgets.
func ApplyTheme(t Theme) {
	activeTheme = t
}

// ActiveTheme returns the theme currently applied to new widgets.
func ActiveTheme() Theme {
	return activeTheme
}

// themeFile is the on-disk theme shape. Colors are strings: "#RRGGBB",
// "#RRGGBBAA", or an SVG 1.1 color name like "steelblue".
type themeFile struct {
	FontSize        float64 `toml:"font_size" yaml:"font_size"`
	TextColor       string  `toml:"text_color" yaml:"text_color"`
	BackgroundColor string  `toml:"background_color" yaml:"background_color"`
	AccentColor     string  `toml:"accent_color" yaml:"accent_color"`
}

// LoadTheme reads a theme from a .toml, .yaml or .yml file. Fields absent
// from the file keep the default theme's values.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, errors.Wrap(err, ErrCodeInvalidTheme, "failed to read theme file")
	}

	var file themeFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return theme, errors.Wrap(err, ErrCodeInvalidTheme, "failed to parse TOML theme")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return theme, errors.Wrap(err, ErrCodeInvalidTheme, "failed to parse YAML theme")
		}
	default:
		return theme, errors.New(ErrCodeInvalidTheme, "unsupported theme file extension: "+ext)
	}

	if file.FontSize < 0 {
		return theme, errors.New(ErrCodeInvalidTheme, "font_size must not be negative")
	}
	if file.FontSize > 0 {
		theme.FontSize = file.FontSize
	}
	for _, field := range []struct {
		value string
		dst   *uint32
	}{
		{file.TextColor, &theme.TextColor},
		{file.BackgroundColor, &theme.BackgroundColor},
		{file.AccentColor, &theme.AccentColor},
	} {
		if field.value == "" {
			continue
		}
		c, err := ParseColor(field.value)
		if err != nil {
			return theme, err
		}
		*field.dst = c
	}
	return theme, nil
}

// ParseColor resolves a color string to packed RGBA (0xRRGGBBAA). Accepts
// "#RGB", "#RRGGBB", "#RRGGBBAA" hex forms and SVG 1.1 color names.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(ErrCodeInvalidTheme, "empty color value")
	}

	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA(c.R, c.G, c.B, c.A), nil
	}
	return 0, errors.New(ErrCodeInvalidTheme, "unknown color name: "+s)
}

func parseHexColor(hex string) (uint32, error) {
	switch len(hex) {
	case 3:
		// #RGB expands each nibble: #1AF -> #11AAFF.
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[i*2] = hex[i]
			expanded[i*2+1] = hex[i]
		}
		hex = string(expanded) + "FF"
	case 6:
		hex += "FF"
	case 8:
	default:
		return 0, errors.New(ErrCodeInvalidTheme, fmt.Sprintf("hex color must have 3, 6 or 8 digits, got %d", len(hex)))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrap(err, ErrCodeInvalidTheme, "invalid hex color")
	}
	return uint32(v), nil
}

// RGB packs an opaque color as 0xRRGGBBAA.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 0xFF)
}

// RGBA packs a color as 0xRRGGBBAA.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}
