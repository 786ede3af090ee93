package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURL(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"title":"Backend Developer","company_name":"Acme"}` + "\n" +
			`not json` + "\n" +
			`{"title":"Data Analyst","company_name":"Banco Sur"}` + "\n"))
	}))
	defer server.Close()

	records, err := FetchURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Backend Developer", records[0].Title)
	assert.Equal(t, "Data Analyst", records[1].Title)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestFetchURLCustomHeaders(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"title":"Dev"}` + "\n"))
	}))
	defer server.Close()

	opts := DefaultFetchOptions()
	opts.Headers = map[string]string{"Authorization": "Bearer token123"}

	_, err := FetchURL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
}

func TestFetchURLErrors(t *testing.T) {
	t.Run("Invalid URL", func(t *testing.T) {
		_, err := FetchURL(context.Background(), "not-a-url", nil)
		require.Error(t, err)

		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "invalid URL", fe.Message)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := FetchURL(context.Background(), server.URL, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP status 503")
	})
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://collector.example.com/records.jsonl"))
	assert.True(t, IsURL("http://localhost:8080/batch"))
	assert.False(t, IsURL("records.jsonl"))
	assert.False(t, IsURL("/var/data/records.jsonl"))
}

func TestReadSourceLocalFile(t *testing.T) {
	_, err := ReadSource(context.Background(), "/no/such/records.jsonl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open records file")
}
