package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y", input: "y\n", expected: true},
		{name: "uppercase Y", input: "Y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "padded yes", input: "  yes  \n", expected: true},
		{name: "n", input: "n\n", expected: false},
		{name: "empty line defaults to no", input: "\n", expected: false},
		{name: "no input", input: "", expected: false},
		{name: "garbage", input: "maybe\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(strings.NewReader(tt.input), &out, "stop it? [y/N] ")
			if got != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), "stop it?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}
