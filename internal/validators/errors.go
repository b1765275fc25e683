// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyDocument     = errors.New("document is empty")
	ErrMalformedDocument = errors.New("document is not a well-formed JSON object")
)
