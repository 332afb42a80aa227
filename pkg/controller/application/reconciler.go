// Package application reconciles AuthentikApplication resources into
// applications inside the referenced Authentik instance.
package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
	"github.com/dsluijk/authentik-operator/pkg/controller/common"
	"github.com/dsluijk/authentik-operator/pkg/controller/controllername"
	"github.com/dsluijk/authentik-operator/pkg/controller/metrics"
)

const finalizer = "authentik-application/ak.dany.dev"

var reconcilerName = controllername.NewControllerName([]string{"authentik", "application"})

type reconciler struct {
	client client.Client
	newAPI func(instance, namespace string) *akapi.Client
}

// NewReconciler wires the application controller into the manager.
func NewReconciler(mgr ctrl.Manager) error {
	metrics.InitControllerMetrics(reconcilerName.MetricsName())

	r := &reconciler{
		client: mgr.GetClient(),
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{Instance: instance, Namespace: namespace})
		},
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&akv1.AuthentikApplication{}).
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

	app := &akv1.AuthentikApplication{}
	if err := r.client.Get(ctx, req.NamespacedName, app); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if app.DeletionTimestamp != nil {
		return r.finalize(ctx, logger, app)
	}

	if !controllerutil.ContainsFinalizer(app, finalizer) {
		controllerutil.AddFinalizer(app, finalizer)
		if err := r.client.Update(ctx, app); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
	}

	api, err := r.authenticated(ctx, app)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := r.ensureApplication(ctx, logger, api, app); err != nil {
		return ctrl.Result{}, err
	}

	return ctrl.Result{RequeueAfter: common.SuccessRequeue}, nil
}

func (r *reconciler) finalize(ctx context.Context, logger logr.Logger, app *akv1.AuthentikApplication) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(app, finalizer) {
		return ctrl.Result{}, nil
	}

	api, err := r.authenticated(ctx, app)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := api.DeleteApplication(ctx, app.Spec.Slug); err != nil && !akapi.IsNotFound(err) {
		return ctrl.Result{}, fmt.Errorf("deleting application: %w", err)
	}

	controllerutil.RemoveFinalizer(app, finalizer)
	if err := r.client.Update(ctx, app); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	logger.Info("cleaned up application")
	return ctrl.Result{}, nil
}

func (r *reconciler) authenticated(ctx context.Context, app *akv1.AuthentikApplication) (*akapi.Client, error) {
	api := r.newAPI(app.Spec.AuthentikInstance, app.Namespace)
	token, err := akapi.ResolveToken(ctx, r.client, api, app.Spec.AuthentikInstance, app.Namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}

func (r *reconciler) ensureApplication(ctx context.Context, logger logr.Logger, api *akapi.Client, app *akv1.AuthentikApplication) error {
	providerPk, err := findProviderPk(ctx, api, app.Spec.Provider)
	if err != nil {
		return err
	}

	desired := buildApplication(app, providerPk)

	live, err := api.GetApplication(ctx, app.Spec.Slug)
	if err != nil {
		return fmt.Errorf("getting application: %w", err)
	}

	if live == nil {
		if _, err := api.CreateApplication(ctx, desired); err != nil {
			return fmt.Errorf("creating application: %w", err)
		}
		logger.Info("created application", "slug", app.Spec.Slug)
		return nil
	}

	desired.Pk = live.Pk
	equal, err := jsonEqual(desired, *live)
	if err != nil {
		return err
	}
	if equal {
		return nil
	}

	if _, err := api.PatchApplication(ctx, app.Spec.Slug, desired); err != nil {
		return fmt.Errorf("patching application: %w", err)
	}
	logger.Info("updated application", "slug", app.Spec.Slug)
	return nil
}

func buildApplication(app *akv1.AuthentikApplication, providerPk int) akapi.Application {
	return akapi.Application{
		Name:             app.Spec.Name,
		Slug:             app.Spec.Slug,
		Provider:         providerPk,
		Group:            app.Spec.Group,
		PolicyEngineMode: string(app.Spec.PolicyMode),
		OpenInNewTab:     app.Spec.UI.NewTab,
		MetaLaunchURL:    app.Spec.UI.URL,
		MetaDescription:  app.Spec.UI.Description,
		MetaPublisher:    app.Spec.UI.Publisher,
	}
}

// findProviderPk resolves a provider name across all provider component
// types. The name must match exactly one live provider.
func findProviderPk(ctx context.Context, api *akapi.Client, name string) (int, error) {
	providers, err := api.FindProviders(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("finding provider %q: %w", name, err)
	}
	for _, p := range providers {
		if p.Name == name {
			return p.Pk, nil
		}
	}
	return 0, fmt.Errorf("provider %q does not exist", name)
}

func jsonEqual(a, b akapi.Application) (bool, error) {
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
