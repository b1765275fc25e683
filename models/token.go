// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Token is an authenticated credential together with the storage key derived
// from it.
//
// Value is the raw secret presented by the client. It is never serialized
// and never logged. Key is the namespace the document is stored under; it is
// a one-way derivation of Value, so it is safe to log and to use as a file
// name or database key.
type Token struct {
	Value string `json:"-"`
	Key   string `json:"key"`
}

// String returns the storage key, so printing a Token never leaks the secret.
func (t Token) String() string {
	return t.Key
}
