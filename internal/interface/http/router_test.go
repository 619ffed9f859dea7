package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
	"github.com/yanqian/vedic-weekly/internal/domain/janampatri"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	"github.com/yanqian/vedic-weekly/internal/infra/config"
	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
)

func TestRouter_PanchangSuccess(t *testing.T) {
	day := panchang.PanchangDay{Tithi: 11, TithiName: "Ekadashi", Vaara: "Somavara"}
	stub := &stubServices{
		computeFn: func(ctx context.Context, date time.Time) (panchang.PanchangDay, error) {
			require.Equal(t, "2025-01-06", date.Format("2006-01-02"))
			return day, nil
		},
	}

	recorder := performGet("/api/v1/panchang?date=2025-01-06", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got panchang.PanchangDay
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, 11, got.Tithi)
	require.Equal(t, "Ekadashi", got.TithiName)
}

func TestRouter_PanchangRejectsMalformedDate(t *testing.T) {
	recorder := performGet("/api/v1/panchang?date=06-01-2025", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_date", errBody["error"]["code"])
}

func TestRouter_PanchangEphemerisFailure(t *testing.T) {
	stub := &stubServices{
		computeFn: func(ctx context.Context, date time.Time) (panchang.PanchangDay, error) {
			return panchang.PanchangDay{}, apperrors.Wrap(apperrors.CodeEphemerisUnavailable, "position provider unreachable", nil)
		},
	}

	recorder := performGet("/api/v1/panchang?date=2025-01-06", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusBadGateway, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "ephemeris_unavailable", errBody["error"]["code"])
}

func TestRouter_DigestSnapsWeekStartToSunday(t *testing.T) {
	stub := &stubServices{
		assembleFn: func(ctx context.Context, weekStart time.Time) (digest.WeeklyDigest, error) {
			// 2025-01-29 is a Wednesday; the preceding Sunday is 2025-01-26.
			require.Equal(t, "2025-01-26", weekStart.Format("2006-01-02"))
			return digest.WeeklyDigest{WeekStart: weekStart}, nil
		},
	}

	recorder := performGet("/api/v1/digest?weekStart=2025-01-29", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_DigestTextFormat(t *testing.T) {
	stub := &stubServices{
		assembleFn: func(ctx context.Context, weekStart time.Time) (digest.WeeklyDigest, error) {
			return digest.WeeklyDigest{
				WeekStart: weekStart,
				WeekEnd:   weekStart.AddDate(0, 0, 6),
			}, nil
		},
	}

	recorder := performGet("/api/v1/digest?weekStart=2025-01-26&format=text", newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")
	require.True(t, strings.Contains(recorder.Body.String(), "2025-01-26"))
}

func TestRouter_JanamPatriNotConfigured(t *testing.T) {
	recorder := performGet("/api/v1/janam-patri", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "not_configured", errBody["error"]["code"])
}

func TestRouter_JanamPatriSuccess(t *testing.T) {
	patriStub := &stubJanamPatri{
		computeFn: func(ctx context.Context) (janampatri.JanamPatri, error) {
			return janampatri.JanamPatri{NakshatraName: "Pushya", RashiName: "Karka"}, nil
		},
	}
	handler := NewHandler(&stubServices{}, &stubServices{}, patriStub, &stubServices{}, testLocation(), newTestLogger())
	server := NewRouter(testConfig(), handler)

	recorder := performGet("/api/v1/janam-patri", server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got janampatri.JanamPatri
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Pushya", got.NakshatraName)
}

func TestRouter_RecommendVerses(t *testing.T) {
	stub := &stubServices{
		recommendFn: func(ctx context.Context, tags []string, topK int) (verses.Recommendation, error) {
			require.Equal(t, []string{"pitru", "ancestors"}, tags)
			require.Equal(t, 2, topK)
			return verses.Recommendation{
				Results: []verses.RecommendationResult{{Verse: verses.VerseRecord{ID: "vs-pitru"}, Score: 2}},
			}, nil
		},
	}

	recorder := performPost("/api/v1/verses/recommend", `{"tags":["pitru","ancestors"],"topK":2}`, newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got verses.Recommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Results, 1)
	require.Equal(t, "vs-pitru", got.Results[0].Verse.ID)
}

func TestRouter_RecommendVersesEmptyCorpus(t *testing.T) {
	stub := &stubServices{
		recommendFn: func(ctx context.Context, tags []string, topK int) (verses.Recommendation, error) {
			return verses.Recommendation{}, apperrors.Wrap(apperrors.CodeCorpusEmpty, "no verses loaded", nil)
		},
	}

	recorder := performPost("/api/v1/verses/recommend", `{"tags":["dharma"]}`, newRouterUnderTest(t, stub))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "corpus_empty", errBody["error"]["code"])
}

func TestRouter_Healthz(t *testing.T) {
	recorder := performGet("/healthz", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func performGet(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performPost(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, stub *stubServices) *http.Server {
	t.Helper()
	handler := NewHandler(stub, stub, nil, stub, testLocation(), newTestLogger())
	return NewRouter(testConfig(), handler)
}

func testLocation() panchang.GeoLocation {
	return panchang.GeoLocation{
		Name:           "New Jersey, USA",
		Latitude:       40.0583,
		Longitude:      -74.4057,
		UTCOffsetHours: -5,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

// stubServices implements the panchang, digest, and recommender interfaces.
// The janam patri service is stubbed separately because its Compute method
// has a different shape.
type stubServices struct {
	computeFn   func(ctx context.Context, date time.Time) (panchang.PanchangDay, error)
	assembleFn  func(ctx context.Context, weekStart time.Time) (digest.WeeklyDigest, error)
	recommendFn func(ctx context.Context, tags []string, topK int) (verses.Recommendation, error)
}

func (s *stubServices) Compute(ctx context.Context, date time.Time) (panchang.PanchangDay, error) {
	if s.computeFn != nil {
		return s.computeFn(ctx, date)
	}
	return panchang.PanchangDay{}, nil
}

func (s *stubServices) Assemble(ctx context.Context, weekStart time.Time) (digest.WeeklyDigest, error) {
	if s.assembleFn != nil {
		return s.assembleFn(ctx, weekStart)
	}
	return digest.WeeklyDigest{}, nil
}

func (s *stubServices) Recommend(ctx context.Context, tags []string, topK int) (verses.Recommendation, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, tags, topK)
	}
	return verses.Recommendation{}, nil
}

type stubJanamPatri struct {
	computeFn func(ctx context.Context) (janampatri.JanamPatri, error)
}

func (s *stubJanamPatri) Compute(ctx context.Context) (janampatri.JanamPatri, error) {
	if s.computeFn != nil {
		return s.computeFn(ctx)
	}
	return janampatri.JanamPatri{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
