package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 6-digit OTP
	var buf [4]byte
	rand.Read(buf[:])
	n := binary.BigEndian.Uint32(buf[:])
	return fmt.Sprintf("%06d", n%1000000)
}
