// Package oauthprovider reconciles AuthentikOAuthProvider resources into
// OAuth2 providers inside the referenced Authentik instance, projecting the
// client credentials into a Secret.
package oauthprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
	"github.com/dsluijk/authentik-operator/pkg/controller/common"
	"github.com/dsluijk/authentik-operator/pkg/controller/controllername"
	"github.com/dsluijk/authentik-operator/pkg/controller/metrics"
	"github.com/dsluijk/authentik-operator/pkg/manifests"
	"github.com/dsluijk/authentik-operator/pkg/util"
)

const finalizer = "authentik-oauth/ak.dany.dev"

const (
	clientIDLength     = 128
	clientSecretLength = 255
)

var reconcilerName = controllername.NewControllerName([]string{"authentik", "oauth", "provider"})

type reconciler struct {
	client client.Client
	newAPI func(instance, namespace string) *akapi.Client
}

// NewReconciler wires the OAuth2 provider controller into the manager.
func NewReconciler(mgr ctrl.Manager) error {
	metrics.InitControllerMetrics(reconcilerName.MetricsName())

	r := &reconciler{
		client: mgr.GetClient(),
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{Instance: instance, Namespace: namespace})
		},
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&akv1.AuthentikOAuthProvider{}).
		Owns(&corev1.Secret{}, builder.WithPredicates(common.OwnedPredicate(manifests.PartOfOAuth))).
		WithOptions(controller.Options{RateLimiter: common.NewErrorRateLimiter()}).
		Complete(r)
}

func (r *reconciler) Reconcile(ctx context.Context, req ctrl.Request) (res ctrl.Result, err error) {
	defer func() {
		metrics.HandleControllerReconcileMetrics(reconcilerName.MetricsName(), res, err)
	}()

	logger := log.FromContext(ctx).
		WithName(reconcilerName.LoggerName()).
		WithValues("name", req.Name, "namespace", req.Namespace)

	provider := &akv1.AuthentikOAuthProvider{}
	if err := r.client.Get(ctx, req.NamespacedName, provider); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if provider.DeletionTimestamp != nil {
		return r.finalize(ctx, logger, provider)
	}

	if !controllerutil.ContainsFinalizer(provider, finalizer) {
		controllerutil.AddFinalizer(provider, finalizer)
		if err := r.client.Update(ctx, provider); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
	}

	changed, err := r.autofill(ctx, provider)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("generating client credentials: %w", err)
	}
	if changed {
		logger.Info("generated client credentials")
		return ctrl.Result{RequeueAfter: common.AutofillRequeue}, nil
	}

	api, err := r.authenticated(ctx, provider)
	if err != nil {
		return ctrl.Result{}, err
	}

	desired, err := r.buildDesired(ctx, api, provider)
	if err != nil {
		return ctrl.Result{}, err
	}

	live, err := r.converge(ctx, logger, api, provider, desired)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := util.Upsert(ctx, r.client, manifests.OAuthSecret(provider, live)); err != nil {
		return ctrl.Result{}, fmt.Errorf("projecting client secret: %w", err)
	}

	return ctrl.Result{RequeueAfter: common.SuccessRequeue}, nil
}

func (r *reconciler) finalize(ctx context.Context, logger logr.Logger, provider *akv1.AuthentikOAuthProvider) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(provider, finalizer) {
		return ctrl.Result{}, nil
	}

	api, err := r.authenticated(ctx, provider)
	if err != nil {
		return ctrl.Result{}, err
	}

	live, found, err := findByName(ctx, api, provider.Spec.Name)
	if err != nil {
		return ctrl.Result{}, err
	}
	if found {
		if err := api.DeleteOAuthProvider(ctx, live.Pk); err != nil && !akapi.IsNotFound(err) {
			return ctrl.Result{}, fmt.Errorf("deleting provider: %w", err)
		}
	}

	controllerutil.RemoveFinalizer(provider, finalizer)
	if err := r.client.Update(ctx, provider); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	logger.Info("cleaned up oauth provider")
	return ctrl.Result{}, nil
}

func (r *reconciler) authenticated(ctx context.Context, provider *akv1.AuthentikOAuthProvider) (*akapi.Client, error) {
	api := r.newAPI(provider.Spec.AuthentikInstance, provider.Namespace)
	token, err := akapi.ResolveToken(ctx, r.client, api, provider.Spec.AuthentikInstance, provider.Namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}

// autofill writes generated client credentials into the spec. Fields already
// set are never rewritten.
func (r *reconciler) autofill(ctx context.Context, provider *akv1.AuthentikOAuthProvider) (bool, error) {
	if provider.Spec.ClientID != "" && provider.Spec.ClientSecret != "" {
		return false, nil
	}

	observed := provider.DeepCopy()

	if provider.Spec.ClientID == "" {
		id, err := util.RandomSecret(clientIDLength)
		if err != nil {
			return false, err
		}
		provider.Spec.ClientID = id
	}
	if provider.Spec.ClientSecret == "" {
		secret, err := util.RandomSecret(clientSecretLength)
		if err != nil {
			return false, err
		}
		provider.Spec.ClientSecret = secret
	}

	if err := common.PatchSpec(ctx, r.client, provider, observed); err != nil {
		return false, err
	}
	return true, nil
}

// buildDesired resolves the spec's foreign references and assembles the
// provider payload.
func (r *reconciler) buildDesired(ctx context.Context, api *akapi.Client, provider *akv1.AuthentikOAuthProvider) (akapi.OAuthProvider, error) {
	flow, err := api.GetFlow(ctx, provider.Spec.Flow)
	if err != nil {
		return akapi.OAuthProvider{}, fmt.Errorf("resolving flow %q: %w", provider.Spec.Flow, err)
	}

	scopes := make([]string, 0, len(provider.Spec.Scopes))
	for _, name := range provider.Spec.Scopes {
		mappings, err := api.FindScopeMappings(ctx, name)
		if err != nil {
			return akapi.OAuthProvider{}, fmt.Errorf("finding scope mapping %q: %w", name, err)
		}

		found := false
		for _, m := range mappings {
			if m.Name == name {
				scopes = append(scopes, m.Pk)
				found = true
				break
			}
		}
		if !found {
			return akapi.OAuthProvider{}, fmt.Errorf("scope mapping %q does not exist", name)
		}
	}

	signingKey := ""
	if provider.Spec.SigningKey != "" {
		certs, err := api.FindCertificates(ctx, provider.Spec.SigningKey, true)
		if err != nil {
			return akapi.OAuthProvider{}, fmt.Errorf("finding signing key %q: %w", provider.Spec.SigningKey, err)
		}

		for _, cert := range certs {
			if cert.Name == provider.Spec.SigningKey {
				signingKey = cert.Pk
				break
			}
		}
		if signingKey == "" {
			return akapi.OAuthProvider{}, fmt.Errorf("signing key %q does not exist", provider.Spec.SigningKey)
		}
	}

	claims := true
	if provider.Spec.ClaimsInToken != nil {
		claims = *provider.Spec.ClaimsInToken
	}

	return akapi.OAuthProvider{
		Name:                   provider.Spec.Name,
		AuthorizationFlow:      flow.Pk,
		PropertyMappings:       scopes,
		ClientType:             string(provider.Spec.ClientType),
		ClientID:               provider.Spec.ClientID,
		ClientSecret:           provider.Spec.ClientSecret,
		AccessCodeValidity:     provider.Spec.AccessCodeValidity,
		TokenValidity:          provider.Spec.TokenValidity,
		IncludeClaimsInIDToken: claims,
		SigningKey:             signingKey,
		RedirectURIs:           strings.Join(provider.Spec.RedirectURIs, "\n"),
		SubMode:                string(provider.Spec.SubjectMode),
		IssuerMode:             string(provider.Spec.IssuerMode),
	}, nil
}

// converge creates or patches the provider upstream and returns the live
// provider as Authentik reports it.
func (r *reconciler) converge(ctx context.Context, logger logr.Logger, api *akapi.Client, provider *akv1.AuthentikOAuthProvider, desired akapi.OAuthProvider) (akapi.OAuthProvider, error) {
	live, found, err := findByName(ctx, api, provider.Spec.Name)
	if err != nil {
		return akapi.OAuthProvider{}, err
	}

	if !found {
		created, err := api.CreateOAuthProvider(ctx, desired)
		if err != nil {
			return akapi.OAuthProvider{}, fmt.Errorf("creating provider: %w", err)
		}
		logger.Info("created oauth provider", "provider", provider.Spec.Name)
		return created, nil
	}

	desired.Pk = live.Pk
	// Authentik reorders property mappings on read. When both sides carry
	// the same set, keep the live ordering so the serializations match.
	if sameSet(desired.PropertyMappings, live.PropertyMappings) {
		desired.PropertyMappings = live.PropertyMappings
	}

	equal, err := jsonEqual(desired, live)
	if err != nil {
		return akapi.OAuthProvider{}, err
	}
	if equal {
		return live, nil
	}

	patched, err := api.PatchOAuthProvider(ctx, live.Pk, desired)
	if err != nil {
		return akapi.OAuthProvider{}, fmt.Errorf("patching provider: %w", err)
	}
	logger.Info("updated oauth provider", "provider", provider.Spec.Name)
	return patched, nil
}

func findByName(ctx context.Context, api *akapi.Client, name string) (akapi.OAuthProvider, bool, error) {
	providers, err := api.FindOAuthProviders(ctx, name)
	if err != nil {
		return akapi.OAuthProvider{}, false, fmt.Errorf("finding provider %q: %w", name, err)
	}
	for _, p := range providers {
		if p.Name == name {
			return p, true, nil
		}
	}
	return akapi.OAuthProvider{}, false, nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func jsonEqual(a, b akapi.OAuthProvider) (bool, error) {
	rawA, err := json.Marshal(a)
	if err != nil {
		return false, err
	}
	rawB, err := json.Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(rawA, rawB), nil
}
