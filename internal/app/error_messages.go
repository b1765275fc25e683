// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the sync
// server's HTTP layer and the command-line client.
//
// Keeping them in one place keeps the wording consistent between what the
// server answers and what the client prints.
package app

const (
	// MsgUnauthorized is the body of every 401 answer. Missing and wrong
	// credentials get the same text.
	MsgUnauthorized = "unauthorized"

	// MsgPullUpdated is printed after the local file was replaced.
	MsgPullUpdated = "local document updated from server"

	// MsgPullUnchanged is printed when the local file already matches the
	// server copy.
	MsgPullUnchanged = "local document is already up to date"

	// MsgPullEmpty is printed when the server holds nothing for the token.
	MsgPullEmpty = "server has no document yet, local file left unchanged"

	// MsgPushed is printed after the server acknowledged a push.
	MsgPushed = "local document pushed to server"
)
