// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const storageKeyDomain = "lytodo/storage-key/v1\x00"

// DeriveStorageKey returns the storage key for token: the lowercase hex
// BLAKE2b-256 of a fixed domain prefix followed by the token. The key names
// the stored snapshot, so it must never reveal the token or depend on input
// the caller controls beyond the token itself.
func DeriveStorageKey(token string) string {
	sum := blake2b.Sum256([]byte(storageKeyDomain + token))
	return hex.EncodeToString(sum[:])
}
