// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
	}{
		{"16 bytes", 16},
		{"csrf key", KeyLen},
		{"64 bytes", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateKey(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateKey() error = %v", err)
			}
			if len(key) != tt.byteLen {
				t.Errorf("GenerateKey() length = %d, want %d", len(key), tt.byteLen)
			}
		})
	}

	// Test randomness - two keys should be different
	k1, _ := GenerateKey(KeyLen)
	k2, _ := GenerateKey(KeyLen)
	if bytes.Equal(k1, k2) {
		t.Error("GenerateKey() produced duplicate keys (extremely unlikely)")
	}
}

func TestParseKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, KeyLen)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"hex", hex.EncodeToString(raw), false},
		{"base64 padded", base64.StdEncoding.EncodeToString(raw), false},
		{"base64 url raw", base64.RawURLEncoding.EncodeToString(raw), false},
		{"surrounding space", "  " + hex.EncodeToString(raw) + "\n", false},
		{"too short", hex.EncodeToString(raw[:16]), true},
		{"garbage", "not a key", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ParseKey() error = %v, want ErrInvalidKey", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey() error = %v", err)
			}
			if !bytes.Equal(key, raw) {
				t.Errorf("ParseKey() = %x, want %x", key, raw)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	key := []byte("ip-key")

	tests := []struct {
		name string
		ip   string
	}{
		{"IPv4", "192.168.1.1"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334"},
		{"localhost", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, key)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}
			if _, err := hex.DecodeString(hash); err != nil {
				t.Errorf("HashIP() is not hex: %s", hash)
			}
			if hash != HashIP(tt.ip, key) {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	if HashIP("192.168.1.1", key) == HashIP("192.168.1.2", key) {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if HashIP("192.168.1.1", []byte("k1")) == HashIP("192.168.1.1", []byte("k2")) {
		t.Error("HashIP() produced same hash for different keys")
	}
}
