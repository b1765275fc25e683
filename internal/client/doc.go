// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client workflow: replacing the local
// document with the server's copy on pull, and sending the local document
// on push.
//
// A pull never leaves a partially written local file: the new document is
// written to a temporary file and renamed over the old one, after an
// optional timestamped backup. A push never modifies the local file.
package client
