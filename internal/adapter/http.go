// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gamey-gateway/internal/board"
	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/utils"
	"github.com/MKhiriev/gamey-gateway/models"
)

const (
	resetPath       = "/reset"
	executeMovePath = "/execute-move"

	traceIDHeader = "X-Trace-ID"
	layoutKey     = "layout"
	winnerKey     = "winner"
)

type httpGameEngine struct {
	client *utils.HTTPClient

	shape     board.Shape
	boardKeys []string

	logger *logger.Logger
}

// NewHTTPGameEngine constructs an HTTP/JSON implementation of [GameEngine].
// It normalises and validates the base URL from cfg.Address and bounds every
// request with cfg.RequestTimeout.
//
// Returns an error if cfg.Address cannot be parsed as a valid URL or
// cfg.BoardShape is unknown.
func NewHTTPGameEngine(cfg config.Engine, logger *logger.Logger) (GameEngine, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid engine address: %w", err)
	}

	shape, err := board.ParseShape(cfg.BoardShape)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("engine", baseURL).Str("shape", string(shape)).Msg("game engine adapter created")

	return &httpGameEngine{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		shape:     shape,
		boardKeys: cfg.BoardKeys,
		logger:    logger,
	}, nil
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

// Reset implements [GameEngine]. It POSTs an empty body to /reset. The
// engine may answer with a bare board or with the board nested under one of
// the configured keys.
func (h *httpGameEngine) Reset(ctx context.Context) (models.GameState, error) {
	resp, err := h.request(ctx).Post(resetPath)
	if err != nil {
		return models.GameState{}, fmt.Errorf("%w: reset request: %w", ErrEngineUnavailable, err)
	}

	return h.handleResponse(ctx, resp)
}

// ExecuteMove implements [GameEngine]. It POSTs {"index": index} to
// /execute-move.
func (h *httpGameEngine) ExecuteMove(ctx context.Context, index int) (models.GameState, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EngineMoveRequest{Index: index}).
		Post(executeMovePath)
	if err != nil {
		return models.GameState{}, fmt.Errorf("%w: execute move request: %w", ErrEngineUnavailable, err)
	}

	return h.handleResponse(ctx, resp)
}

func (h *httpGameEngine) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpGameEngine) handleResponse(ctx context.Context, resp *resty.Response) (models.GameState, error) {
	logger.FromContext(ctx).Debug().
		Str("engine_path", resp.Request.URL).
		Int("engine_status", resp.StatusCode()).
		Dur("engine_duration", resp.Time()).
		Msg("game engine answered")

	if err := mapHTTPError(resp); err != nil {
		return models.GameState{}, err
	}

	return h.decodeState(resp.Body())
}

// decodeState extracts the board and winner from an engine answer and
// checks the board against the configured shape.
func (h *httpGameEngine) decodeState(body []byte) (models.GameState, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return models.GameState{}, fmt.Errorf("%w: decode response: %w", ErrEngineUnavailable, err)
	}

	raw, ok := h.findBoard(top, body)
	if !ok {
		return models.GameState{}, fmt.Errorf("%w: no board in engine response", ErrInvalidBoard)
	}

	var b models.Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return models.GameState{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	if len(b.Players) == 0 {
		b.Players = append([]string(nil), board.DefaultPlayers...)
	}
	if err := board.Validate(b, h.shape); err != nil {
		return models.GameState{}, err
	}

	winner, err := decodeWinner(top[winnerKey])
	if err != nil {
		return models.GameState{}, err
	}

	return models.GameState{Board: b, Winner: winner}, nil
}

// findBoard returns the top-level object when it carries a layout, and
// otherwise the first configured key holding an object with a layout.
func (h *httpGameEngine) findBoard(top map[string]json.RawMessage, body []byte) (json.RawMessage, bool) {
	if _, ok := top[layoutKey]; ok {
		return body, true
	}

	for _, key := range h.boardKeys {
		raw, ok := top[key]
		if ok && hasLayout(raw) {
			return raw, true
		}
	}

	return nil, false
}

func hasLayout(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	_, ok := obj[layoutKey]
	return ok
}

func decodeWinner(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var winner *int
	if err := json.Unmarshal(raw, &winner); err != nil {
		return nil, fmt.Errorf("%w: decode winner: %w", ErrEngineUnavailable, err)
	}
	return winner, nil
}
