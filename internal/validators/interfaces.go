// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks documents before they cross a trust boundary:
// the server validates pushed bodies before storing them and the client
// validates the local file before pushing it.
//
// Validators are injected into the services that use them so tests can swap
// in stricter or looser rules.
package validators

import "context"

// Validator validates an input value.
type Validator interface {
	Validate(ctx context.Context, data any) error
}
