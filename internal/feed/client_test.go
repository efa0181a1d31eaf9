package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendascope/backend/pkg/logger"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient(ClientParams{
		URL:         url,
		MaxAttempts: 2,
		Logger:      logger.New(logger.Options{ServiceName: "test"}),
	})
	require.NoError(t, err)
	return client
}

func TestClientFetchUsesLiveSheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Status,Valor_Venda,Produto_comprado,Data_da_compra\naprovada,\"10,00\",Curso A,01-06-2024\n"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	records, source, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSheet, source)
	require.Len(t, records, 1)
	assert.Equal(t, "Curso A", records[0].Value(FieldProductName))
}

func TestClientFetchFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	records, source, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, records)
}

func TestClientFetchFallsBackOnEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	records, source, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, records)
}

func TestClientFetchWithoutURLServesFallback(t *testing.T) {
	client := newTestClient(t, "")
	records, source, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, records)
}

func TestClientRetriesTransientFailures(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("Status,Valor_Venda,Produto_comprado,Data_da_compra\naprovada,\"10,00\",Curso A,01-06-2024\n"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	records, source, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSheet, source)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, calls)
}
