// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/loadingkuu/LyTodo/models"
)

// Client is the contract the command-line front end drives.
type Client interface {
	Pull(ctx context.Context) (PullResult, error)
	Push(ctx context.Context) (models.PushResponse, error)
}
