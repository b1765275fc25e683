// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "hex digest", key: strings.Repeat("ab12", 16)},
		{name: "single char", key: "a"},
		{name: "max length", key: strings.Repeat("a", maxKeyLength)},
		{name: "empty", key: "", wantErr: true},
		{name: "too long", key: strings.Repeat("a", maxKeyLength+1), wantErr: true},
		{name: "path traversal", key: "../etc/passwd", wantErr: true},
		{name: "slash", key: "a/b", wantErr: true},
		{name: "uppercase", key: "ABC", wantErr: true},
		{name: "dot", key: "a.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
