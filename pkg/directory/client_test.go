package directory

import (
	"Suivi/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Directory.BaseURL = srv.URL
	cfg.Directory.APIKey = "secret"
	return NewClient(cfg)
}

func TestSearchPerson_SendsQueryAndParsesRecords(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":"p-1","firstName":"Jean","lastName":"Dupont"},
			{"id":"p-2","first_name":"Jeanne","last_name":"Dupond"}
		]}`))
	})

	matches, err := c.SearchPerson(context.Background(), "Jean Dupont")
	require.NoError(t, err)
	assert.Equal(t, "/people/search", gotPath)
	assert.Equal(t, "Jean Dupont", gotQuery)
	assert.Equal(t, "Bearer secret", gotAuth)

	require.Len(t, matches, 2)
	assert.Equal(t, "p-1", matches[0].ID)
	assert.Equal(t, "Jean", matches[0].FirstName)
	assert.Equal(t, "Dupont", matches[0].LastName)
	assert.Equal(t, "Jeanne", matches[1].FirstName)
	assert.Equal(t, "Dupond", matches[1].LastName)
}

func TestSearchOrganisation_UsesOrganisationPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"results":[{"id":"Q12345","name":"Acme Org"}]}`))
	})

	matches, err := c.SearchOrganisationByExternalID(context.Background(), "Q12345")
	require.NoError(t, err)
	assert.Equal(t, "/organisations/search", gotPath)
	require.Len(t, matches, 1)
	assert.Equal(t, "Acme Org", matches[0].Name)
}

func TestSearch_NonOKStatusIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SearchTag(context.Background(), "maire")
	assert.Error(t, err)
}

func TestSearch_NotConfigured(t *testing.T) {
	c := NewClient(config.Default())
	_, err := c.SearchTag(context.Background(), "maire")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestParseMatches(t *testing.T) {
	t.Run("missing results is empty", func(t *testing.T) {
		m, err := ParseMatches([]byte(`{"total":0}`), "results")
		require.NoError(t, err)
		assert.Empty(t, m)
	})
	t.Run("bare array", func(t *testing.T) {
		m, err := ParseMatches([]byte(`[{"tag":"maire"}]`), "")
		require.NoError(t, err)
		require.Len(t, m, 1)
		assert.Equal(t, "maire", m[0].Tag)
	})
	t.Run("nested path", func(t *testing.T) {
		m, err := ParseMatches([]byte(`{"data":{"items":[{"key":"a"},{"key":"b"}]}}`), "data.items")
		require.NoError(t, err)
		require.Len(t, m, 2)
		assert.Equal(t, "a", m[0].ID)
		assert.Equal(t, "b", m[1].ID)
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseMatches([]byte(`{`), "results")
		assert.Error(t, err)
	})
	t.Run("results not array", func(t *testing.T) {
		_, err := ParseMatches([]byte(`{"results":{"id":"x"}}`), "results")
		assert.Error(t, err)
	})
}
