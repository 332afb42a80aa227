// Package instance manages the lifecycle of an Authentik deployment: its
// Kubernetes workload, the operator's service account inside the running
// instance, and the durable API token the other controllers authenticate
// with.
package instance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	rbacv1 "k8s.io/api/rbac/v1"
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

const finalizer = "authentik/ak.dany.dev"

var reconcilerName = controllername.NewControllerName([]string{"authentik", "instance"})

// newAPI builds an unauthenticated API client for an instance. Swapped out
// in tests.
type newAPI func(instance, namespace string) *akapi.Client

type reconciler struct {
	client client.Client
	newAPI newAPI

	// zero means the package defaults, overridden in tests
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewReconciler wires the instance controller into the manager.
func NewReconciler(mgr ctrl.Manager) error {
	metrics.InitControllerMetrics(reconcilerName.MetricsName())

	r := &reconciler{
		client: mgr.GetClient(),
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{Instance: instance, Namespace: namespace})
		},
	}

	owned := builder.WithPredicates(common.OwnedPredicate(manifests.PartOfInstance))
	return ctrl.NewControllerManagedBy(mgr).
		For(&akv1.Authentik{}).
		Owns(&appsv1.Deployment{}, owned).
		Owns(&corev1.Service{}, owned).
		Owns(&networkingv1.Ingress{}, owned).
		Owns(&corev1.Secret{}, owned).
		Owns(&corev1.ServiceAccount{}, owned).
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

	ak := &akv1.Authentik{}
	if err := r.client.Get(ctx, req.NamespacedName, ak); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if ak.DeletionTimestamp != nil {
		return r.finalize(ctx, logger, ak)
	}

	if !controllerutil.ContainsFinalizer(ak, finalizer) {
		controllerutil.AddFinalizer(ak, finalizer)
		if err := r.client.Update(ctx, ak); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
	}

	changed, err := r.autofill(ctx, ak)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("generating spec defaults: %w", err)
	}
	if changed {
		// Reconcile again once the updated spec has been observed.
		logger.Info("generated instance secret key")
		return ctrl.Result{RequeueAfter: common.AutofillRequeue}, nil
	}

	if err := r.applyRBAC(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling cluster account: %w", err)
	}
	if err := r.applyWorkload(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling deployments: %w", err)
	}
	if err := r.applyService(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling service: %w", err)
	}
	if err := r.applyIngress(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling ingress: %w", err)
	}

	if err := r.waitForServer(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("waiting for server pod: %w", err)
	}

	if err := r.bootstrapServiceAccount(ctx, logger, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("bootstrapping service account: %w", err)
	}
	if err := r.ensureServiceGroup(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling service group: %w", err)
	}
	if err := r.mirrorTokenSecret(ctx, logger, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("mirroring operator token: %w", err)
	}
	if err := r.removeOOBE(ctx, logger, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing initial setup: %w", err)
	}

	logger.Info("reconciled instance")
	return ctrl.Result{RequeueAfter: common.SuccessRequeue}, nil
}

func (r *reconciler) finalize(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(ak, finalizer) {
		return ctrl.Result{}, nil
	}

	if err := r.cleanup(ctx, logger, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("cleaning up instance: %w", err)
	}

	controllerutil.RemoveFinalizer(ak, finalizer)
	if err := r.client.Update(ctx, ak); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	logger.Info("cleaned up instance")
	return ctrl.Result{}, nil
}

func (r *reconciler) autofill(ctx context.Context, ak *akv1.Authentik) (bool, error) {
	if ak.Spec.SecretKey != "" {
		return false, nil
	}

	secret, err := util.RandomSecret(128)
	if err != nil {
		return false, err
	}

	observed := ak.DeepCopy()
	ak.Spec.SecretKey = secret
	if err := common.PatchSpec(ctx, r.client, ak, observed); err != nil {
		return false, err
	}
	return true, nil
}

func (r *reconciler) authenticated(ctx context.Context, ak *akv1.Authentik) (*akapi.Client, error) {
	api := r.newAPI(ak.Name, ak.Namespace)
	token, err := akapi.ResolveToken(ctx, r.client, api, ak.Name, ak.Namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}

// cleanup runs the reconcile pipeline in reverse. Namespaced children are
// garbage collected through their owner references, the cluster-scoped
// RBAC objects and the identity provider's records are not.
func (r *reconciler) cleanup(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) error {
	if err := r.cleanupServiceGroup(ctx, ak); err != nil {
		logger.Error(err, "failed to delete service group, continuing cleanup")
	}
	if err := r.cleanupServiceAccount(ctx, logger, ak); err != nil {
		logger.Error(err, "failed to delete operator account, continuing cleanup")
	}

	var errs *multierror.Error

	ingress := &networkingv1.Ingress{}
	ingress.Name = manifests.IngressName(ak.Name)
	ingress.Namespace = ak.Namespace
	if err := r.client.Delete(ctx, ingress); client.IgnoreNotFound(err) != nil {
		errs = multierror.Append(errs, fmt.Errorf("deleting ingress: %w", err))
	}

	service := &corev1.Service{}
	service.Name = manifests.ServiceName(ak.Name)
	service.Namespace = ak.Namespace
	if err := r.client.Delete(ctx, service); client.IgnoreNotFound(err) != nil {
		errs = multierror.Append(errs, fmt.Errorf("deleting service: %w", err))
	}

	for _, name := range []string{manifests.ServerDeploymentName(ak.Name), manifests.WorkerDeploymentName(ak.Name)} {
		deploy := &appsv1.Deployment{}
		deploy.Name = name
		deploy.Namespace = ak.Namespace
		if err := r.client.Delete(ctx, deploy); client.IgnoreNotFound(err) != nil {
			errs = multierror.Append(errs, fmt.Errorf("deleting deployment %s: %w", name, err))
		}
	}

	role := &rbacv1.ClusterRole{}
	role.Name = manifests.AccountName(ak.Name)
	if err := r.client.Delete(ctx, role); client.IgnoreNotFound(err) != nil {
		errs = multierror.Append(errs, fmt.Errorf("deleting cluster role: %w", err))
	}

	binding := &rbacv1.ClusterRoleBinding{}
	binding.Name = manifests.AccountName(ak.Name)
	if err := r.client.Delete(ctx, binding); client.IgnoreNotFound(err) != nil {
		errs = multierror.Append(errs, fmt.Errorf("deleting cluster role binding: %w", err))
	}

	return errs.ErrorOrNil()
}
