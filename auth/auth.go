// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// KeyLen is the byte length gorilla/csrf expects for its auth key
const KeyLen = 32

var ErrInvalidKey = errors.New("invalid key")

// GenerateKey returns byteLen random bytes
func GenerateKey(byteLen int) ([]byte, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return b, nil
}

// ParseKey decodes a KeyLen-byte key written as hex or base64 (standard or URL-safe, padding optional)
func ParseKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := hex.DecodeString(s); err == nil && len(b) == KeyLen {
		return b, nil
	}
	for _, enc := range []*base64.Encoding{base64.RawStdEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(strings.TrimRight(s, "=")); err == nil && len(b) == KeyLen {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: want %d bytes as hex or base64", ErrInvalidKey, KeyLen)
}

// HashIP creates a one-way hash of an IP address so sessions never store it raw
func HashIP(ip string, key []byte) string {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 8 bytes are enough to tell viewers apart
	return hex.EncodeToString(sum[:8])
}
