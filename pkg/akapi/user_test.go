package akapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSelf(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, sessionUser{User: User{Pk: 7, Username: APIUser}})
		})

		user, err := client.GetSelf(context.Background())
		require.NoError(t, err)
		require.Equal(t, 7, user.Pk)
		require.Equal(t, APIUser, user.Username)
	})

	t.Run("rejected token", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.GetSelf(context.Background())
		require.True(t, IsForbidden(err))
	})
}

func TestCreateServiceAccount(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v3/core/users/service_account/", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]string{"username": APIUser})
		})

		require.NoError(t, client.CreateServiceAccount(context.Background(), APIUser))
	})

	t.Run("duplicate", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := client.CreateServiceAccount(context.Background(), APIUser)
		require.True(t, IsAlreadyExists(err))
	})
}

func TestCreateAccount(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/core/users/", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, User{Pk: 12, Username: "alice"})
	})

	user, err := client.CreateAccount(context.Background(), CreateUserRequest{
		Name:     "Alice",
		Username: "alice",
		Path:     "users",
		Groups:   []string{},
	})
	require.NoError(t, err)
	require.Equal(t, 12, user.Pk)
}

func TestDeleteAccount(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/api/v3/core/users/12/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.DeleteAccount(context.Background(), 12))
	})

	t.Run("missing", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := client.DeleteAccount(context.Background(), 12)
		require.True(t, IsNotFound(err))
	})
}

func TestSetPassword(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/core/users/3/set_password/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SetPassword(context.Background(), 3, "hunter2"))
}

func TestUpdateUser(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/v3/core/users/3/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, User{Pk: 3})
	})

	err := client.UpdateUser(context.Background(), 3, UserUpdate{Groups: []string{"abc"}})
	require.NoError(t, err)
}
