// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the sync server and stops it
// gracefully when its context is cancelled.
package server
