package protocol

// Error codes carried by ErrorMsg.
const (
	// Request decoding/validation.
	ErrBadRequest = "E_BAD_REQUEST"

	// Spec resolution.
	ErrBadSpec       = "E_BAD_SPEC"
	ErrUnknownPreset = "E_UNKNOWN_PRESET"

	// Everything else.
	ErrInternal = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrBadRequest:    {},
	ErrBadSpec:       {},
	ErrUnknownPreset: {},
	ErrInternal:      {},
}

// IsKnownCode reports whether code is part of the wire contract. The
// empty code is allowed on non-error messages.
func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
