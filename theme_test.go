package fluentkit

import (
	"os"
	"path/filepath"
	"testing"

	errors "github.com/agilira/go-errors"
)

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}
	return path
}

func TestLoadThemeTOMLAndYAMLEquivalent(t *testing.T) {
	tomlPath := writeThemeFile(t, "theme.toml", `
font_size = 16.0
text_color = "#222222"
background_color = "steelblue"
accent_color = "#3B82F6AA"
`)
	yamlPath := writeThemeFile(t, "theme.yaml", `
font_size: 16.0
text_color: "#222222"
background_color: steelblue
accent_color: "#3B82F6AA"
`)

	fromTOML, err := LoadTheme(tomlPath)
	if err != nil {
		t.Fatalf("LoadTheme(toml): %v", err)
	}
	fromYAML, err := LoadTheme(yamlPath)
	if err != nil {
		t.Fatalf("LoadTheme(yaml): %v", err)
	}

	if fromTOML != fromYAML {
		t.Errorf("TOML and YAML themes differ:\n  toml: %+v\n  yaml: %+v", fromTOML, fromYAML)
	}
	if fromTOML.FontSize != 16 {
		t.Errorf("FontSize = %v, want 16", fromTOML.FontSize)
	}
	if fromTOML.TextColor != 0x222222FF {
		t.Errorf("TextColor = %#08x, want 0x222222ff", fromTOML.TextColor)
	}
	// steelblue is rgb(70, 130, 180).
	if fromTOML.BackgroundColor != RGB(70, 130, 180) {
		t.Errorf("BackgroundColor = %#08x, want steelblue", fromTOML.BackgroundColor)
	}
	if fromTOML.AccentColor != 0x3B82F6AA {
		t.Errorf("AccentColor = %#08x, want 0x3b82f6aa", fromTOML.AccentColor)
	}
}

func TestLoadThemePartialKeepsDefaults(t *testing.T) {
	path := writeThemeFile(t, "partial.toml", `font_size = 18.0`)

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	def := DefaultTheme()
	if theme.FontSize != 18 {
		t.Errorf("FontSize = %v, want 18", theme.FontSize)
	}
	if theme.TextColor != def.TextColor || theme.BackgroundColor != def.BackgroundColor {
		t.Error("unset colors should keep default values")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad extension", "theme.json", `{}`},
		{"bad toml", "theme.toml", `font_size = [`},
		{"bad color name", "theme.toml", `text_color = "notacolor"`},
		{"bad hex", "theme.toml", `text_color = "#12"`},
		{"negative font size", "theme.toml", `font_size = -2.0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeThemeFile(t, tt.file, tt.content)
			_, err := LoadTheme(path)
			if err == nil {
				t.Fatal("expected error")
			}
			coder, ok := err.(errors.ErrorCoder)
			if !ok {
				t.Fatalf("expected coded error, got %T", err)
			}
			if string(coder.ErrorCode()) != ErrCodeInvalidTheme {
				t.Errorf("code = %s, want %s", coder.ErrorCode(), ErrCodeInvalidTheme)
			}
		})
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#1AF", 0x11AAFFFF},
		{"#112233", 0x112233FF},
		{"#11223344", 0x11223344},
		{"white", 0xFFFFFFFF},
		{"Black", 0x000000FF},
		{" SteelBlue ", RGB(70, 130, 180)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, got, tt.want)
		}
	}
}

func TestApplyThemeAffectsNewWidgets(t *testing.T) {
	prev := ActiveTheme()
	defer ApplyTheme(prev)

	custom := DefaultTheme()
	custom.FontSize = 20
	custom.TextColor = RGB(10, 20, 30)
	ApplyTheme(custom)

	l := NewLabel("styled")
	if l.FontSize() != 20 {
		t.Errorf("FontSize = %v, want 20", l.FontSize())
	}
	if l.TextColor() != RGB(10, 20, 30) {
		t.Errorf("TextColor = %#08x, want %#08x", l.TextColor(), RGB(10, 20, 30))
	}
}
