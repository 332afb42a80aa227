package akapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateToken(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var body Token
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(t, w, http.StatusCreated, body)
		})

		token := Token{
			Identifier:  TokenIdentifier("foo"),
			Intent:      "api",
			User:        7,
			Description: OperatorTokenDescription,
			Expiring:    false,
		}
		require.NoError(t, client.CreateToken(context.Background(), token))
		require.Equal(t, "ak-operator-foo__operatortoken", body.Identifier)
		require.False(t, body.Expiring)
	})

	t.Run("duplicate", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := client.CreateToken(context.Background(), Token{Identifier: "tok"})
		require.True(t, IsAlreadyExists(err))
	})
}

func TestDeleteToken(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/core/tokens/tok/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.DeleteToken(context.Background(), "tok"))
	})

	t.Run("missing", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.DeleteToken(context.Background(), "tok")
		require.True(t, IsNotFound(err))
	})
}

func TestViewTokenKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/core/tokens/tok/view_key/", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]string{"key": "secret-key"})
		})

		key, err := client.ViewTokenKey(context.Background(), "tok")
		require.NoError(t, err)
		require.Equal(t, "secret-key", key)
	})

	t.Run("missing", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.ViewTokenKey(context.Background(), "tok")
		require.True(t, IsNotFound(err))
	})
}
