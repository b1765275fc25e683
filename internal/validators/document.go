// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// DocumentValidator checks a todo-list document before it is stored or sent.
// The document schema is owned by the client application, so only the
// structure is enforced: a single well-formed JSON object.
type DocumentValidator struct{}

func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{}
}

// Validate accepts []byte, json.RawMessage or string input.
func (v *DocumentValidator) Validate(ctx context.Context, data any) error {
	var doc []byte
	switch d := data.(type) {
	case []byte:
		doc = d
	case json.RawMessage:
		doc = d
	case string:
		doc = []byte(d)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return ErrEmptyDocument
	}
	if !json.Valid(trimmed) {
		return ErrMalformedDocument
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%w: top-level value must be an object", ErrMalformedDocument)
	}

	return nil
}
