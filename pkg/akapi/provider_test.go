package akapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindProviders(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/providers/all/", r.URL.Path)
		require.Equal(t, "p", r.URL.Query().Get("search"))
		writePage(t, w, []Provider{{Pk: 4, Name: "p", Component: "ak-provider-oauth2-form"}})
	})

	providers, err := client.FindProviders(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	require.Equal(t, 4, providers[0].Pk)
}

func TestFindOAuthProviders(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/providers/oauth2/", r.URL.Path)
		require.Equal(t, "p", r.URL.Query().Get("name"))
		writePage(t, w, []OAuthProvider{{Pk: 4, Name: "p"}})
	})

	providers, err := client.FindOAuthProviders(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, providers, 1)
}

func TestCreateOAuthProvider(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeJSON(t, w, http.StatusCreated, OAuthProvider{Pk: 4, Name: "p"})
	})

	provider, err := client.CreateOAuthProvider(context.Background(), OAuthProvider{Name: "p"})
	require.NoError(t, err)
	require.Equal(t, 4, provider.Pk)
}

func TestPatchOAuthProvider(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/v3/providers/oauth2/4/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, OAuthProvider{Pk: 4, Name: "p"})
	})

	_, err := client.PatchOAuthProvider(context.Background(), 4, OAuthProvider{Name: "p"})
	require.NoError(t, err)
}

func TestDeleteOAuthProvider(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/providers/oauth2/4/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.DeleteOAuthProvider(context.Background(), 4))
	})

	t.Run("missing", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.DeleteOAuthProvider(context.Background(), 4)
		require.True(t, IsNotFound(err))
	})
}
