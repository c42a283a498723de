package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("sealbox keygen")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	// Set NO_COLOR for this test.
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "sealbox keygen", "`sealbox keygen`"},
		{"Path has no decoration", Path, "notes.txt.sealed", "notes.txt.sealed"},
		{"Flag has no decoration", Flag, "--force", "--force"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "a1b2c3d4e5", "'a1b2c3d4e5'"},
		{"Muted adds parentheses", Muted, "unknown", "(unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestSprintfFormatting(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	got := Highlight.Sprintf("%s.pem", "mykey")
	if got != "'mykey.pem'" {
		t.Errorf("Highlight.Sprintf = %q, want %q", got, "'mykey.pem'")
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}

	for _, tt := range tests {
		if got := EnsureNewline(tt.input); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
