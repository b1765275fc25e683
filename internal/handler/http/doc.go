// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the sync server.
//
// It exposes route wiring, the pull and push handlers, and the middleware
// chain in front of them: panic recovery, request tracing, access logging,
// gzip negotiation, token authentication, request size limits and optional
// HMAC integrity checks. Business decisions are delegated to the service
// layer; this package only translates them to status codes and headers.
package http
