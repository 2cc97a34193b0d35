// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool keeps reusable SHA-256 hash instances for [Digest].
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes the raw SHA-256 sum of data using a hasher taken from the
// package pool.
//
// Example usage:
//
//	sum := utils.Hash([]byte("hello"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Digest returns the SHA-256 digest of data as a 64-character lowercase
// hexadecimal string, two digits per byte, most-significant byte first.
//
// Digest is pure: identical input always yields the identical string.
//
// Example usage:
//
//	utils.Digest([]byte("hello"))
//	// 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
func Digest(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// DigestString is a convenience wrapper around [Digest] for string input.
func DigestString(data string) string {
	return Digest([]byte(data))
}
