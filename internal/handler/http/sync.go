// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	etagHeader          = "ETag"
	ifNoneMatchHeader   = "If-None-Match"
	lastModifiedHeader  = "Last-Modified"
	snapshotEmptyHeader = "X-Snapshot-Empty"
)

// pull writes the caller's document as stored. A request whose
// If-None-Match matches the current ETag is answered with 304 and no body.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.pull").Msg("no token in context")
		http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
		return
	}

	result, err := h.services.SyncService.Pull(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("pull failed")
		writeError(w, err)
		return
	}

	header := w.Header()
	header.Set(etagHeader, strconv.Quote(result.ETag))
	header.Set("Cache-Control", "no-cache")
	if !result.UpdatedAt.IsZero() {
		header.Set(lastModifiedHeader, result.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	if result.Empty {
		header.Set(snapshotEmptyHeader, "true")
	}

	if etagMatches(r.Header.Get(ifNoneMatchHeader), result.ETag, !result.Empty) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if h.hasher != nil {
		header.Set(hashHeader, h.hasher.HexSum(result.Content))
	}
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(result.Length))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(result.Content); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("failed to write response")
	}
}

// push replaces the caller's document with the request body.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.push").Msg("no token in context")
		http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
		return
	}

	body, err := readBody(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("failed to read request body")
		writeError(w, err)
		return
	}

	result, err := h.services.SyncService.Push(ctx, token, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("push failed")
		writeError(w, err)
		return
	}

	w.Header().Set(etagHeader, strconv.Quote(result.ETag))
	_, err = utils.WriteJSON(w, models.PushResponse{
		OK:        true,
		ETag:      result.ETag,
		Length:    result.Length,
		UpdatedAt: result.UpdatedAt,
	}, http.StatusOK)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("failed to write response")
	}
}

// etagMatches reports whether an If-None-Match header value selects etag.
// Weak validators and lists are accepted. "*" matches only when a document
// is actually stored.
func etagMatches(ifNoneMatch, etag string, stored bool) bool {
	ifNoneMatch = strings.TrimSpace(ifNoneMatch)
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return stored
	}

	for candidate := range strings.SplitSeq(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		candidate = strings.Trim(candidate, `"`)
		if candidate == etag {
			return true
		}
	}
	return false
}
