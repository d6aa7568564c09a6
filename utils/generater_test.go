package utils

import (
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("GenerateOTP() = %q, want 6 digits", otp)
		}
		for _, ch := range otp {
			if ch < '0' || ch > '9' {
				t.Fatalf("GenerateOTP() = %q, contains non-digit %q", otp, ch)
			}
		}
	}
}
