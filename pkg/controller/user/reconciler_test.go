package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
	"github.com/dsluijk/authentik-operator/pkg/controller/common"
	"github.com/dsluijk/authentik-operator/pkg/controller/testutils"
	"github.com/dsluijk/authentik-operator/pkg/manifests"
)

// fakeUserAPI simulates the user and group endpoints of the Authentik API.
type fakeUserAPI struct {
	mu     sync.Mutex
	users  map[int]akapi.User
	groups map[string]akapi.Group
	nextPk int

	passwords        map[int]string
	setPasswordCalls int
	memberships      map[int][]string
}

func newFakeUserAPI() *fakeUserAPI {
	return &fakeUserAPI{
		users:       map[int]akapi.User{},
		groups:      map[string]akapi.Group{},
		nextPk:      1,
		passwords:   map[int]string{},
		memberships: map[int][]string{},
	}
}

func (f *fakeUserAPI) addGroup(name string) akapi.Group {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := akapi.Group{Pk: fmt.Sprintf("g%d", f.nextPk), Name: name}
	f.nextPk++
	f.groups[g.Pk] = g
	return g
}

func (f *fakeUserAPI) addUser(username string) akapi.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := akapi.User{Pk: f.nextPk, Username: username}
	f.nextPk++
	f.users[u.Pk] = u
	return u
}

func (f *fakeUserAPI) byUsername(username string) (akapi.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, true
		}
	}
	return akapi.User{}, false
}

func (f *fakeUserAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v3")
	writePage := func(results any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"pagination": map[string]any{"count": 0},
			"results":    results,
		})
	}

	if path == "/core/users/me/" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"pk":1,"username":"ak-operator"}}`))
		return
	}

	switch {
	case r.Method == http.MethodGet && path == "/core/users/":
		f.mu.Lock()
		username := r.URL.Query().Get("username")
		results := []akapi.User{}
		for _, u := range f.users {
			if username == "" || u.Username == username {
				results = append(results, u)
			}
		}
		f.mu.Unlock()
		writePage(results)

	case r.Method == http.MethodPost && path == "/core/users/":
		var req akapi.CreateUserRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		u := f.addUser(req.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(u)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/set_password/"):
		var pk int
		_, _ = fmt.Sscanf(path, "/core/users/%d/set_password/", &pk)
		var body struct {
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.passwords[pk] = body.Password
		f.setPasswordCalls++
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodPatch && strings.HasPrefix(path, "/core/users/"):
		var pk int
		_, _ = fmt.Sscanf(path, "/core/users/%d/", &pk)
		var body akapi.UserUpdate
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.memberships[pk] = body.Groups
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/core/users/"):
		var pk int
		_, _ = fmt.Sscanf(path, "/core/users/%d/", &pk)

		f.mu.Lock()
		_, exists := f.users[pk]
		delete(f.users, pk)
		f.mu.Unlock()

		if exists {
			w.WriteHeader(http.StatusNoContent)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}

	case r.Method == http.MethodGet && path == "/core/groups/":
		f.mu.Lock()
		name := r.URL.Query().Get("name")
		results := []akapi.Group{}
		for _, g := range f.groups {
			if name == "" || g.Name == name {
				results = append(results, g)
			}
		}
		f.mu.Unlock()
		writePage(results)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func testUser() *akv1.AuthentikUser {
	return &akv1.AuthentikUser{
		ObjectMeta: metav1.ObjectMeta{Name: "alice-cr", Namespace: "auth"},
		Spec: akv1.AuthentikUserSpec{
			AuthentikInstance: "foo",
			Username:          "alice",
			DisplayName:       "Alice",
			Email:             "alice@example.com",
			Path:              "users",
		},
	}
}

func newTestReconciler(t *testing.T, srv *httptest.Server, objs ...client.Object) (*reconciler, client.Client) {
	t.Helper()

	builder := testutils.RegisterSchemes(t, fake.NewClientBuilder(), clientgoscheme.AddToScheme, akv1.AddToScheme)
	c := builder.WithObjects(objs...).Build()

	return &reconciler{
		client: c,
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{URL: srv.URL})
		},
	}, c
}

func reconcileRequest() ctrl.Request {
	return ctrl.Request{NamespacedName: types.NamespacedName{Name: "alice-cr", Namespace: "auth"}}
}

func TestReconcileCreatesAccountAndPassword(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	r, c := newTestReconciler(t, srv, testUser())

	res, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Equal(t, common.SuccessRequeue, res.RequeueAfter)

	created, ok := api.byUsername("alice")
	require.True(t, ok)
	require.Len(t, api.passwords[created.Pk], 128)

	secret := &corev1.Secret{}
	name := types.NamespacedName{Name: manifests.UserSecretName("foo", "alice-cr"), Namespace: "auth"}
	require.NoError(t, c.Get(ctx, name, secret))
	require.Equal(t, "alice", secret.StringData["username"])
	require.Equal(t, api.passwords[created.Pk], secret.StringData["password"])

	got := &akv1.AuthentikUser{}
	require.NoError(t, c.Get(ctx, reconcileRequest().NamespacedName, got))
	require.True(t, controllerutil.ContainsFinalizer(got, finalizer))
}

func TestReconcileUsesSpecPassword(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	user := testUser()
	user.Spec.Password = "hunter2"
	r, _ := newTestReconciler(t, srv, user)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	created, ok := api.byUsername("alice")
	require.True(t, ok)
	require.Equal(t, "hunter2", api.passwords[created.Pk])
}

func TestReconcileDoesNotRotatePassword(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	api.addUser("alice")
	srv := httptest.NewServer(api)
	defer srv.Close()

	existing := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      manifests.UserSecretName("foo", "alice-cr"),
			Namespace: "auth",
		},
		Data: map[string][]byte{"password": []byte("original")},
	}
	r, _ := newTestReconciler(t, srv, testUser(), existing)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Zero(t, api.setPasswordCalls)
}

func TestReconcileWiresGroupMembership(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	admins := api.addGroup("admins")
	srv := httptest.NewServer(api)
	defer srv.Close()

	user := testUser()
	user.Spec.Groups = []string{"admins"}
	r, _ := newTestReconciler(t, srv, user)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	created, ok := api.byUsername("alice")
	require.True(t, ok)
	require.Equal(t, []string{admins.Pk}, api.memberships[created.Pk])
}

func TestReconcileFailsOnMissingGroup(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	user := testUser()
	user.Spec.Groups = []string{"admins"}
	r, _ := newTestReconciler(t, srv, user)

	beforeErrs := testutils.GetErrMetricCount(t, reconcilerName)
	_, err := r.Reconcile(ctx, reconcileRequest())
	require.ErrorContains(t, err, "does not exist")
	require.Greater(t, testutils.GetErrMetricCount(t, reconcilerName), beforeErrs)
}

func TestReconcileCleanup(t *testing.T) {
	ctx := context.Background()
	api := newFakeUserAPI()
	api.addUser("alice")
	srv := httptest.NewServer(api)
	defer srv.Close()

	user := testUser()
	now := metav1.Now()
	user.DeletionTimestamp = &now
	user.Finalizers = []string{finalizer}

	r, c := newTestReconciler(t, srv, user)

	res, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Zero(t, res.RequeueAfter)

	_, ok := api.byUsername("alice")
	require.False(t, ok)

	err = c.Get(ctx, reconcileRequest().NamespacedName, &akv1.AuthentikUser{})
	require.True(t, apierrors.IsNotFound(err))
}

func TestNewReconcilerForCoverage(t *testing.T) {
	s := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(s))
	require.NoError(t, akv1.AddToScheme(s))

	require.NoError(t, NewReconciler(&testutils.FakeManager{Scheme: s}))
}
