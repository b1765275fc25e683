// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	storagePath = "/api/storage"

	hashHeader          = "HashSHA256"
	snapshotEmptyHeader = "X-Snapshot-Empty"
	traceIDHeader       = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	// hasher is nil when no hash key is configured.
	hasher   *utils.Hasher
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at cfg.URL, authenticating with cfg.Token. A URL without a
// scheme is treated as plain http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	a := &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:    strings.TrimSpace(cfg.Token),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	if cfg.HashKey != "" {
		a.hasher = utils.NewHasher(cfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader(traceIDHeader, h.traceIDs.Generate())
}

// Pull implements [ServerAdapter]. The body of a 200 answer is checked
// against the ETag header, and against HashSHA256 when a hash key is
// configured, before it is returned.
func (h *httpServerAdapter) Pull(ctx context.Context, ifNoneMatch string) (models.PulledDocument, error) {
	req := h.authedRequest(ctx)
	if ifNoneMatch != "" {
		req.SetHeader("If-None-Match", strconv.Quote(ifNoneMatch))
	}

	resp, err := req.Get(storagePath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.Pull").Msg("pull request failed")
		return models.PulledDocument{}, fmt.Errorf("%w: pull request: %w", ErrTransport, err)
	}

	etag := parseETag(resp.Header().Get("ETag"))
	if resp.StatusCode() == http.StatusNotModified {
		return models.PulledDocument{ETag: etag, NotModified: true}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PulledDocument{}, err
	}

	content := resp.Body()
	if etag != "" && utils.ContentHash(content) != etag {
		return models.PulledDocument{}, fmt.Errorf("%w: body does not match ETag %s", ErrIntegrity, etag)
	}
	if h.hasher != nil && !h.hasher.Verify(content, resp.Header().Get(hashHeader)) {
		return models.PulledDocument{}, fmt.Errorf("%w: %s header mismatch", ErrIntegrity, hashHeader)
	}

	doc := models.PulledDocument{
		Content: content,
		ETag:    etag,
		Empty:   resp.Header().Get(snapshotEmptyHeader) == "true",
	}
	if lm := resp.Header().Get("Last-Modified"); lm != "" {
		if t, parseErr := http.ParseTime(lm); parseErr == nil {
			doc.UpdatedAt = t
		}
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.Pull").
		Str("etag", etag).
		Int("length", len(content)).
		Bool("empty", doc.Empty).
		Msg("document pulled")

	return doc, nil
}

// Push implements [ServerAdapter]. The acknowledged ETag must match the
// content that was sent.
func (h *httpServerAdapter) Push(ctx context.Context, content []byte) (models.PushResponse, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(content)
	if h.hasher != nil {
		req.SetHeader(hashHeader, h.hasher.HexSum(content))
	}

	resp, err := req.Post(storagePath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.Push").Msg("push request failed")
		return models.PushResponse{}, fmt.Errorf("%w: push request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var ack models.PushResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}
	if want := utils.ContentHash(content); ack.ETag != want {
		return models.PushResponse{}, fmt.Errorf("%w: server stored %s, sent %s", ErrIntegrity, ack.ETag, want)
	}

	return ack, nil
}

// parseETag strips the weak prefix and quotes from an ETag header value.
func parseETag(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}
