package protocol

import "testing"

func TestIsKnownCode(t *testing.T) {
	for _, code := range []string{"", ErrProtoBadRequest, ErrVersionMismatch, ErrInternal} {
		if !IsKnownCode(code) {
			t.Errorf("IsKnownCode(%q) = false", code)
		}
	}
	if IsKnownCode("E_MADE_UP") {
		t.Error("IsKnownCode accepted an unknown code")
	}
}
