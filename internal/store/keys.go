// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "fmt"

const maxKeyLength = 128

// ValidateKey checks that key is usable as a file name, row key or redis key
// suffix. Keys are lowercase alphanumeric so they can never name a path
// outside the data directory.
func ValidateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}

	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidKey, c)
		}
	}

	return nil
}
