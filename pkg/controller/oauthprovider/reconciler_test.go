package oauthprovider

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

// fakeProviderAPI simulates the flow, scope-mapping, certificate and OAuth2
// provider endpoints of the Authentik API.
type fakeProviderAPI struct {
	mu        sync.Mutex
	flows     map[string]akapi.Flow
	scopes    map[string]akapi.ScopeMapping
	certs     map[string]akapi.Certificate
	providers map[int]akapi.OAuthProvider
	nextPk    int

	createCalls int
	patchCalls  int
	deleteCalls int
}

func newFakeProviderAPI() *fakeProviderAPI {
	return &fakeProviderAPI{
		flows:     map[string]akapi.Flow{},
		scopes:    map[string]akapi.ScopeMapping{},
		certs:     map[string]akapi.Certificate{},
		providers: map[int]akapi.OAuthProvider{},
		nextPk:    1,
	}
}

func (f *fakeProviderAPI) addFlow(slug string) akapi.Flow {
	f.mu.Lock()
	defer f.mu.Unlock()
	flow := akapi.Flow{Pk: fmt.Sprintf("f%d", f.nextPk), Slug: slug}
	f.nextPk++
	f.flows[slug] = flow
	return flow
}

func (f *fakeProviderAPI) addScope(name string) akapi.ScopeMapping {
	f.mu.Lock()
	defer f.mu.Unlock()
	scope := akapi.ScopeMapping{Pk: fmt.Sprintf("s%d", f.nextPk), Name: name, ScopeName: name}
	f.nextPk++
	f.scopes[name] = scope
	return scope
}

func (f *fakeProviderAPI) addCert(name string) akapi.Certificate {
	f.mu.Lock()
	defer f.mu.Unlock()
	cert := akapi.Certificate{Pk: fmt.Sprintf("c%d", f.nextPk), Name: name}
	f.nextPk++
	f.certs[name] = cert
	return cert
}

func (f *fakeProviderAPI) byName(name string) (akapi.OAuthProvider, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.providers {
		if p.Name == name {
			return p, true
		}
	}
	return akapi.OAuthProvider{}, false
}

func (f *fakeProviderAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v3")
	w.Header().Set("Content-Type", "application/json")

	writePage := func(results any) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"pagination": map[string]any{"count": 0},
			"results":    results,
		})
	}

	if path == "/core/users/me/" {
		_, _ = w.Write([]byte(`{"user":{"pk":1,"username":"ak-operator"}}`))
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/flows/instances/"):
		slug := strings.TrimSuffix(strings.TrimPrefix(path, "/flows/instances/"), "/")
		f.mu.Lock()
		flow, ok := f.flows[slug]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(flow)

	case r.Method == http.MethodGet && path == "/propertymappings/scope/":
		f.mu.Lock()
		name := r.URL.Query().Get("name")
		results := []akapi.ScopeMapping{}
		for _, s := range f.scopes {
			if name == "" || s.Name == name {
				results = append(results, s)
			}
		}
		f.mu.Unlock()
		writePage(results)

	case r.Method == http.MethodGet && path == "/crypto/certificatekeypairs/":
		f.mu.Lock()
		name := r.URL.Query().Get("name")
		results := []akapi.Certificate{}
		for _, c := range f.certs {
			if name == "" || c.Name == name {
				results = append(results, c)
			}
		}
		f.mu.Unlock()
		writePage(results)

	case r.Method == http.MethodGet && path == "/providers/oauth2/":
		f.mu.Lock()
		name := r.URL.Query().Get("name")
		results := []akapi.OAuthProvider{}
		for _, p := range f.providers {
			if name == "" || p.Name == name {
				results = append(results, p)
			}
		}
		f.mu.Unlock()
		writePage(results)

	case r.Method == http.MethodPost && path == "/providers/oauth2/":
		var p akapi.OAuthProvider
		_ = json.NewDecoder(r.Body).Decode(&p)

		f.mu.Lock()
		p.Pk = f.nextPk
		f.nextPk++
		f.providers[p.Pk] = p
		f.createCalls++
		f.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)

	case r.Method == http.MethodPatch && strings.HasPrefix(path, "/providers/oauth2/"):
		var pk int
		_, _ = fmt.Sscanf(path, "/providers/oauth2/%d/", &pk)
		var p akapi.OAuthProvider
		_ = json.NewDecoder(r.Body).Decode(&p)

		f.mu.Lock()
		p.Pk = pk
		f.providers[pk] = p
		f.patchCalls++
		f.mu.Unlock()

		_ = json.NewEncoder(w).Encode(p)

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/providers/oauth2/"):
		var pk int
		_, _ = fmt.Sscanf(path, "/providers/oauth2/%d/", &pk)

		f.mu.Lock()
		_, exists := f.providers[pk]
		delete(f.providers, pk)
		f.deleteCalls++
		f.mu.Unlock()

		if exists {
			w.WriteHeader(http.StatusNoContent)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func testProvider() *akv1.AuthentikOAuthProvider {
	claims := true
	return &akv1.AuthentikOAuthProvider{
		ObjectMeta: metav1.ObjectMeta{Name: "p-cr", Namespace: "auth"},
		Spec: akv1.AuthentikOAuthProviderSpec{
			AuthentikInstance:  "foo",
			Name:               "p",
			Flow:               "authn",
			ClientType:         akv1.ClientTypeConfidential,
			ClientID:           "preset-client-id",
			ClientSecret:       "preset-client-secret",
			Scopes:             []string{"openid"},
			RedirectURIs:       []string{"https://x", "https://y"},
			AccessCodeValidity: "minutes=1",
			TokenValidity:      "days=30",
			ClaimsInToken:      &claims,
			SubjectMode:        akv1.SubjectModeHashedUserID,
			IssuerMode:         akv1.IssuerModePerProvider,
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
	return ctrl.Request{NamespacedName: types.NamespacedName{Name: "p-cr", Namespace: "auth"}}
}

func TestReconcileGeneratesClientCredentials(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(newFakeProviderAPI())
	defer srv.Close()

	provider := testProvider()
	provider.Spec.ClientID = ""
	provider.Spec.ClientSecret = ""
	r, c := newTestReconciler(t, srv, provider)

	res, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Equal(t, common.AutofillRequeue, res.RequeueAfter)

	got := &akv1.AuthentikOAuthProvider{}
	require.NoError(t, c.Get(ctx, reconcileRequest().NamespacedName, got))
	require.Len(t, got.Spec.ClientID, clientIDLength)
	require.Len(t, got.Spec.ClientSecret, clientSecretLength)
	require.Equal(t, "authn", got.Spec.Flow, "patch should not touch user fields")
	require.True(t, controllerutil.ContainsFinalizer(got, finalizer))
}

func TestReconcileCreatesProvider(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	flow := api.addFlow("authn")
	scope := api.addScope("openid")
	srv := httptest.NewServer(api)
	defer srv.Close()

	r, c := newTestReconciler(t, srv, testProvider())

	res, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Equal(t, common.SuccessRequeue, res.RequeueAfter)

	created, ok := api.byName("p")
	require.True(t, ok)
	require.Equal(t, flow.Pk, created.AuthorizationFlow)
	require.Equal(t, []string{scope.Pk}, created.PropertyMappings)
	require.Equal(t, "https://x\nhttps://y", created.RedirectURIs)
	require.Equal(t, "preset-client-id", created.ClientID)
	require.True(t, created.IncludeClaimsInIDToken)

	secret := &corev1.Secret{}
	name := types.NamespacedName{Name: manifests.OAuthSecretName("foo", "p-cr"), Namespace: "auth"}
	require.NoError(t, c.Get(ctx, name, secret))
	require.Equal(t, "preset-client-id", secret.StringData["clientId"])
	require.Equal(t, "preset-client-secret", secret.StringData["clientSecret"])
	require.Equal(t, "https://x\nhttps://y", secret.StringData["redirectUris"])
}

func TestReconcileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	srv := httptest.NewServer(api)
	defer srv.Close()

	r, _ := newTestReconciler(t, srv, testProvider())

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	_, err = r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	require.Equal(t, 1, api.createCalls)
	require.Zero(t, api.patchCalls)
}

func TestReconcilePatchesOnDrift(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	srv := httptest.NewServer(api)
	defer srv.Close()

	r, c := newTestReconciler(t, srv, testProvider())

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	updated := &akv1.AuthentikOAuthProvider{}
	require.NoError(t, c.Get(ctx, reconcileRequest().NamespacedName, updated))
	updated.Spec.RedirectURIs = []string{"https://z"}
	require.NoError(t, c.Update(ctx, updated))

	_, err = r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Equal(t, 1, api.patchCalls)

	live, ok := api.byName("p")
	require.True(t, ok)
	require.Equal(t, "https://z", live.RedirectURIs)
}

func TestReconcileKeepsLiveMappingOrder(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	api.addScope("email")
	srv := httptest.NewServer(api)
	defer srv.Close()

	provider := testProvider()
	provider.Spec.Scopes = []string{"openid", "email"}
	r, _ := newTestReconciler(t, srv, provider)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	// The server reorders the mapping list on read, which must not count
	// as drift.
	live, ok := api.byName("p")
	require.True(t, ok)
	api.mu.Lock()
	reversed := []string{live.PropertyMappings[1], live.PropertyMappings[0]}
	live.PropertyMappings = reversed
	api.providers[live.Pk] = live
	api.mu.Unlock()

	_, err = r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Zero(t, api.patchCalls)
}

func TestReconcileFailsOnMissingScope(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	srv := httptest.NewServer(api)
	defer srv.Close()

	r, _ := newTestReconciler(t, srv, testProvider())

	beforeErrs := testutils.GetErrMetricCount(t, reconcilerName)
	_, err := r.Reconcile(ctx, reconcileRequest())
	require.ErrorContains(t, err, "scope mapping")
	require.Zero(t, api.createCalls)
	require.Greater(t, testutils.GetErrMetricCount(t, reconcilerName), beforeErrs)
}

func TestReconcileFailsOnMissingSigningKey(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	srv := httptest.NewServer(api)
	defer srv.Close()

	provider := testProvider()
	provider.Spec.SigningKey = "missing-cert"
	r, _ := newTestReconciler(t, srv, provider)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.ErrorContains(t, err, "signing key")
}

func TestReconcileResolvesSigningKey(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	cert := api.addCert("tls-cert")
	srv := httptest.NewServer(api)
	defer srv.Close()

	provider := testProvider()
	provider.Spec.SigningKey = "tls-cert"
	r, _ := newTestReconciler(t, srv, provider)

	_, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)

	created, ok := api.byName("p")
	require.True(t, ok)
	require.Equal(t, cert.Pk, created.SigningKey)
}

func TestReconcileCleanup(t *testing.T) {
	ctx := context.Background()
	api := newFakeProviderAPI()
	api.addFlow("authn")
	api.addScope("openid")
	srv := httptest.NewServer(api)
	defer srv.Close()

	provider := testProvider()
	now := metav1.Now()
	provider.DeletionTimestamp = &now
	provider.Finalizers = []string{finalizer}

	api.mu.Lock()
	api.providers[42] = akapi.OAuthProvider{Pk: 42, Name: "p"}
	api.mu.Unlock()

	r, c := newTestReconciler(t, srv, provider)

	res, err := r.Reconcile(ctx, reconcileRequest())
	require.NoError(t, err)
	require.Zero(t, res.RequeueAfter)

	_, ok := api.byName("p")
	require.False(t, ok)

	err = c.Get(ctx, reconcileRequest().NamespacedName, &akv1.AuthentikOAuthProvider{})
	require.True(t, apierrors.IsNotFound(err))
}

func TestNewReconcilerForCoverage(t *testing.T) {
	s := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(s))
	require.NoError(t, akv1.AddToScheme(s))

	require.NoError(t, NewReconciler(&testutils.FakeManager{Scheme: s}))
}
