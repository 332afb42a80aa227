// Package group reconciles AuthentikGroup resources into groups inside the
// referenced Authentik instance.
package group

import (
	"context"
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

const finalizer = "authentik-group/ak.dany.dev"

var reconcilerName = controllername.NewControllerName([]string{"authentik", "group"})

type reconciler struct {
	client client.Client
	newAPI func(instance, namespace string) *akapi.Client
}

// NewReconciler wires the group controller into the manager.
func NewReconciler(mgr ctrl.Manager) error {
	metrics.InitControllerMetrics(reconcilerName.MetricsName())

	r := &reconciler{
		client: mgr.GetClient(),
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{Instance: instance, Namespace: namespace})
		},
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&akv1.AuthentikGroup{}).
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

	group := &akv1.AuthentikGroup{}
	if err := r.client.Get(ctx, req.NamespacedName, group); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if group.DeletionTimestamp != nil {
		return r.finalize(ctx, logger, group)
	}

	if !controllerutil.ContainsFinalizer(group, finalizer) {
		controllerutil.AddFinalizer(group, finalizer)
		if err := r.client.Update(ctx, group); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
	}

	api, err := r.authenticated(ctx, group)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := r.ensureGroup(ctx, logger, api, group); err != nil {
		return ctrl.Result{}, err
	}

	return ctrl.Result{RequeueAfter: common.SuccessRequeue}, nil
}

func (r *reconciler) finalize(ctx context.Context, logger logr.Logger, group *akv1.AuthentikGroup) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(group, finalizer) {
		return ctrl.Result{}, nil
	}

	api, err := r.authenticated(ctx, group)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := deleteGroupByName(ctx, api, group.Spec.Name); err != nil {
		return ctrl.Result{}, fmt.Errorf("deleting group: %w", err)
	}

	controllerutil.RemoveFinalizer(group, finalizer)
	if err := r.client.Update(ctx, group); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	logger.Info("cleaned up group")
	return ctrl.Result{}, nil
}

func (r *reconciler) authenticated(ctx context.Context, group *akv1.AuthentikGroup) (*akapi.Client, error) {
	api := r.newAPI(group.Spec.AuthentikInstance, group.Namespace)
	token, err := akapi.ResolveToken(ctx, r.client, api, group.Spec.AuthentikInstance, group.Namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}

func (r *reconciler) ensureGroup(ctx context.Context, logger logr.Logger, api *akapi.Client, group *akv1.AuthentikGroup) error {
	existing, err := api.FindGroups(ctx, group.Spec.Name)
	if err != nil {
		return fmt.Errorf("finding group: %w", err)
	}
	for _, g := range existing {
		if g.Name == group.Spec.Name {
			return nil
		}
	}

	parent := ""
	if group.Spec.Parent != "" {
		parent, err = findGroupPk(ctx, api, group.Spec.Parent)
		if err != nil {
			return fmt.Errorf("resolving parent group: %w", err)
		}
	}

	_, err = api.CreateGroup(ctx, akapi.CreateGroupRequest{
		Name:        group.Spec.Name,
		IsSuperuser: group.Spec.Superuser,
		Parent:      parent,
		Users:       []int{},
	})
	if err != nil {
		// Lost the race against another creator, the group is there.
		if akapi.IsAlreadyExists(err) {
			return nil
		}
		return fmt.Errorf("creating group: %w", err)
	}

	logger.Info("created group", "group", group.Spec.Name)
	return nil
}

func deleteGroupByName(ctx context.Context, api *akapi.Client, name string) error {
	pk, err := findGroupPk(ctx, api, name)
	if akapi.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := api.DeleteGroup(ctx, pk); err != nil && !akapi.IsNotFound(err) {
		return err
	}
	return nil
}

func findGroupPk(ctx context.Context, api *akapi.Client, name string) (string, error) {
	groups, err := api.FindGroups(ctx, name)
	if err != nil {
		return "", fmt.Errorf("finding group %q: %w", name, err)
	}
	for _, g := range groups {
		if g.Name == name {
			return g.Pk, nil
		}
	}
	return "", &akapi.NotFoundError{Resource: fmt.Sprintf("group %q", name)}
}
