package protocol

import "testing"

func TestIsKnownCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"", true},
		{ErrBadRequest, true},
		{ErrBadSpec, true},
		{ErrUnknownPreset, true},
		{ErrInternal, true},
		{"E_NOPE", false},
		{"bad_spec", false},
	}
	for _, tt := range tests {
		if got := IsKnownCode(tt.code); got != tt.want {
			t.Errorf("IsKnownCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
