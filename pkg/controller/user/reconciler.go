// Package user reconciles AuthentikUser resources into accounts inside the
// referenced Authentik instance, provisioning a password Secret alongside.
package user

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
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

const finalizer = "authentik-user/ak.dany.dev"

var reconcilerName = controllername.NewControllerName([]string{"authentik", "user"})

type reconciler struct {
	client client.Client
	newAPI func(instance, namespace string) *akapi.Client
}

// NewReconciler wires the user controller into the manager.
func NewReconciler(mgr ctrl.Manager) error {
	metrics.InitControllerMetrics(reconcilerName.MetricsName())

	r := &reconciler{
		client: mgr.GetClient(),
		newAPI: func(instance, namespace string) *akapi.Client {
			return akapi.NewClient(akapi.Opts{Instance: instance, Namespace: namespace})
		},
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&akv1.AuthentikUser{}).
		Owns(&corev1.Secret{}, builder.WithPredicates(common.OwnedPredicate(manifests.PartOfUser))).
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

	user := &akv1.AuthentikUser{}
	if err := r.client.Get(ctx, req.NamespacedName, user); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if user.DeletionTimestamp != nil {
		return r.finalize(ctx, logger, user)
	}

	if !controllerutil.ContainsFinalizer(user, finalizer) {
		controllerutil.AddFinalizer(user, finalizer)
		if err := r.client.Update(ctx, user); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
	}

	api, err := r.authenticated(ctx, user)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := r.ensureAccount(ctx, logger, api, user); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling account: %w", err)
	}
	if err := r.ensurePassword(ctx, logger, api, user); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling password: %w", err)
	}
	if err := r.ensureGroups(ctx, api, user); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling group membership: %w", err)
	}

	return ctrl.Result{RequeueAfter: common.SuccessRequeue}, nil
}

func (r *reconciler) finalize(ctx context.Context, logger logr.Logger, user *akv1.AuthentikUser) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(user, finalizer) {
		return ctrl.Result{}, nil
	}

	api, err := r.authenticated(ctx, user)
	if err != nil {
		return ctrl.Result{}, err
	}

	pk, err := findUserPk(ctx, api, user.Spec.Username)
	switch {
	case akapi.IsNotFound(err):
	case err != nil:
		return ctrl.Result{}, err
	default:
		if err := api.DeleteAccount(ctx, pk); err != nil && !akapi.IsNotFound(err) {
			return ctrl.Result{}, fmt.Errorf("deleting account: %w", err)
		}
	}

	controllerutil.RemoveFinalizer(user, finalizer)
	if err := r.client.Update(ctx, user); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	logger.Info("cleaned up user")
	return ctrl.Result{}, nil
}

func (r *reconciler) authenticated(ctx context.Context, user *akv1.AuthentikUser) (*akapi.Client, error) {
	api := r.newAPI(user.Spec.AuthentikInstance, user.Namespace)
	token, err := akapi.ResolveToken(ctx, r.client, api, user.Spec.AuthentikInstance, user.Namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}

func (r *reconciler) ensureAccount(ctx context.Context, logger logr.Logger, api *akapi.Client, user *akv1.AuthentikUser) error {
	_, err := findUserPk(ctx, api, user.Spec.Username)
	if err == nil {
		return nil
	}
	if !akapi.IsNotFound(err) {
		return err
	}

	// Group membership is wired in a later stage, referenced groups may not
	// exist yet.
	_, err = api.CreateAccount(ctx, akapi.CreateUserRequest{
		Name:     user.Spec.DisplayName,
		Username: user.Spec.Username,
		Email:    user.Spec.Email,
		Path:     user.Spec.Path,
		Groups:   []string{},
	})
	if err != nil {
		return err
	}

	logger.Info("created account", "username", user.Spec.Username)
	return nil
}

// ensurePassword provisions the account password once. An existing password
// Secret means the password has been set, it is never rotated afterwards.
func (r *reconciler) ensurePassword(ctx context.Context, logger logr.Logger, api *akapi.Client, user *akv1.AuthentikUser) error {
	name := types.NamespacedName{
		Name:      manifests.UserSecretName(user.Spec.AuthentikInstance, user.Name),
		Namespace: user.Namespace,
	}
	err := r.client.Get(ctx, name, &corev1.Secret{})
	if err == nil {
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return err
	}

	pk, err := findUserPk(ctx, api, user.Spec.Username)
	if err != nil {
		return err
	}

	password := user.Spec.Password
	if password == "" {
		password, err = util.RandomSecret(128)
		if err != nil {
			return err
		}
	}

	if err := api.SetPassword(ctx, pk, password); err != nil {
		return fmt.Errorf("setting password: %w", err)
	}

	if err := util.Upsert(ctx, r.client, manifests.UserSecret(user, password)); err != nil {
		return fmt.Errorf("creating password secret: %w", err)
	}

	logger.Info("provisioned account password", "username", user.Spec.Username)
	return nil
}

func (r *reconciler) ensureGroups(ctx context.Context, api *akapi.Client, user *akv1.AuthentikUser) error {
	if len(user.Spec.Groups) == 0 {
		return nil
	}

	pks := make([]string, 0, len(user.Spec.Groups))
	for _, name := range user.Spec.Groups {
		groups, err := api.FindGroups(ctx, name)
		if err != nil {
			return fmt.Errorf("finding group %q: %w", name, err)
		}

		found := false
		for _, g := range groups {
			if g.Name == name {
				pks = append(pks, g.Pk)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("group %q does not exist in instance %q", name, user.Spec.AuthentikInstance)
		}
	}

	pk, err := findUserPk(ctx, api, user.Spec.Username)
	if err != nil {
		return err
	}

	return api.UpdateUser(ctx, pk, akapi.UserUpdate{Groups: pks})
}

func findUserPk(ctx context.Context, api *akapi.Client, username string) (int, error) {
	users, err := api.FindUsers(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("finding user %q: %w", username, err)
	}
	for _, u := range users {
		if u.Username == username {
			return u.Pk, nil
		}
	}
	return 0, &akapi.NotFoundError{Resource: fmt.Sprintf("user %q", username)}
}
