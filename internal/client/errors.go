// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrLocalDocumentMissing is returned by push when the local file does
	// not exist.
	ErrLocalDocumentMissing = errors.New("local document not found")

	// ErrLocalDocumentInvalid is returned by push when the local file is not
	// well-formed JSON. Nothing is sent to the server.
	ErrLocalDocumentInvalid = errors.New("local document is invalid")
)
