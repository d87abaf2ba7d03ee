//go:build unit

package soulalign_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leen-studio/internal/infra/soulalign"
	"leen-studio/internal/pkg/config"
	"leen-studio/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(serverURL string) *soulalign.Client {
	return soulalign.NewClient(config.SoulAlignConfig{
		APIKey:  "test-api-key",
		BaseURL: serverURL,
		Timeout: time.Second,
	})
}

func TestAlignParsesModelOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))

		// Models wrap the JSON in prose; the relay must dig it out.
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Sure! Here you go:\n{\"mantra\": \"Let peace carry you.\", \"recommendation\": \"Reformer: Ascension\"}\nBlessings."}]}}]}`))
	}))
	defer server.Close()

	result, err := newClient(server.URL).Align(context.Background(), "anxious but hopeful")
	require.NoError(t, err)
	assert.Equal(t, "Let peace carry you.", result.Mantra)
	assert.Equal(t, "Reformer: Ascension", result.Recommendation)
}

func TestAlignFallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "no JSON object in text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"just breathe"}]}}]}`))
			},
		},
		{
			name: "missing required fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"mantra\": \"\", \"recommendation\": \"\"}"}]}}]}`))
			},
		},
		{
			name: "empty candidate list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			result, err := newClient(server.URL).Align(context.Background(), "weary")
			require.NoError(t, err)
			assert.Equal(t, soulalign.RelayFallback, result)
		})
	}
}

func TestAlignRequiresAPIKey(t *testing.T) {
	client := soulalign.NewClient(config.SoulAlignConfig{Timeout: time.Second})

	_, err := client.Align(context.Background(), "weary")
	assert.ErrorIs(t, err, shared.ErrAlignerNotConfigured)
}

func TestAlignTruncatesLongFeelings(t *testing.T) {
	var received int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, 1<<20)
		n, _ := r.Body.Read(body)
		received = n
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"mantra\": \"Rest.\", \"recommendation\": \"Mat: Grounded Faith\"}"}]}}]}`))
	}))
	defer server.Close()

	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'a'
	}

	_, err := newClient(server.URL).Align(context.Background(), string(long))
	require.NoError(t, err)
	// 500 runes of feeling plus the instruction template stays well under the raw input size.
	assert.Less(t, received, 5000)
}
