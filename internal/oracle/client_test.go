package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func testRequest() SkeletonRequest {
	return SkeletonRequest{
		UserID:    "u1",
		Date:      "2026-08-29",
		Archetype: domain.ArchetypePeakPerformer,
		Mode:      domain.ModeStandard,
	}
}

func ollamaReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	err := json.NewEncoder(w).Encode(map[string]any{
		"model":    "test-model",
		"response": text,
	})
	require.NoError(t, err)
}

func TestProposeSkeleton_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		ollamaReply(t, w, "```json\n"+sampleSkeletonJSON+"\n```")
	}))
	defer srv.Close()

	oracle := NewOllamaOracle(testConfig(srv.URL), NoopObserver{})
	got, err := oracle.ProposeSkeleton(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, domain.ZoneMaintenance, got.Blocks[0].Zone)
}

func TestProposeSkeleton_InvalidOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ollamaReply(t, w, "I would rather chat about the weather.")
	}))
	defer srv.Close()

	oracle := NewOllamaOracle(testConfig(srv.URL), NoopObserver{})
	_, err := oracle.ProposeSkeleton(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestProposeSkeleton_EmptySkeletonRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ollamaReply(t, w, `{"blocks": []}`)
	}))
	defer srv.Close()

	oracle := NewOllamaOracle(testConfig(srv.URL), NoopObserver{})
	_, err := oracle.ProposeSkeleton(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestProposeSkeleton_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	oracle := NewOllamaOracle(testConfig(srv.URL), NoopObserver{})
	_, err := oracle.ProposeSkeleton(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	oracle := NewOllamaOracle(testConfig(srv.URL), NoopObserver{})
	assert.True(t, oracle.Available(context.Background()))

	srv.Close()
	assert.False(t, oracle.Available(context.Background()))
}
