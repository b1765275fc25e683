// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the sync protocol. It hides the
// transport behind ServerAdapter so the client workflow can be tested
// without a server.
package adapter

import (
	"context"

	"github.com/loadingkuu/LyTodo/models"
)

type ServerAdapter interface {
	// Pull downloads the document. When ifNoneMatch equals the server's
	// ETag the result has NotModified set and no content.
	Pull(ctx context.Context, ifNoneMatch string) (models.PulledDocument, error)

	// Push uploads content as the new document and returns the server's
	// acknowledgement.
	Push(ctx context.Context, content []byte) (models.PushResponse, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock
