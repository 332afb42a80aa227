package instance

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
	"github.com/dsluijk/authentik-operator/pkg/manifests"
	"github.com/dsluijk/authentik-operator/pkg/util"
)

// bootstrapServiceAccount creates the operator's account inside the
// identity provider and issues the durable API token it authenticates
// with. Every step is idempotent, a rerun against a bootstrapped instance
// is a no-op.
func (r *reconciler) bootstrapServiceAccount(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) error {
	api, err := r.authenticated(ctx, ak)
	if err != nil {
		return err
	}

	err = api.CreateServiceAccount(ctx, akapi.APIUser)
	switch {
	case err == nil:
		logger.Info("created operator service account")
	case akapi.IsAlreadyExists(err):
	default:
		return fmt.Errorf("creating operator account: %w", err)
	}

	// Service accounts get a password token on creation, which would let
	// anyone log in as the operator. Drop it.
	if err := api.DeleteToken(ctx, akapi.ServiceAccountPasswordToken()); err != nil && !akapi.IsNotFound(err) {
		return fmt.Errorf("deleting password token: %w", err)
	}

	pk, err := findUserPk(ctx, api, akapi.APIUser)
	if err != nil {
		return err
	}

	token := akapi.Token{
		Identifier:  akapi.TokenIdentifier(ak.Name),
		Intent:      "api",
		User:        pk,
		Description: akapi.OperatorTokenDescription,
		Expiring:    false,
	}
	if err := api.CreateToken(ctx, token); err != nil && !akapi.IsAlreadyExists(err) {
		return fmt.Errorf("creating operator token: %w", err)
	}
	return nil
}

// ensureServiceGroup puts the operator account in a superuser group of its
// own, so it can manage users, groups and providers.
func (r *reconciler) ensureServiceGroup(ctx context.Context, ak *akv1.Authentik) error {
	api, err := r.authenticated(ctx, ak)
	if err != nil {
		return err
	}

	name := akapi.ServiceGroupName(ak.Name)
	groups, err := api.FindGroups(ctx, name)
	if err != nil {
		return fmt.Errorf("finding service group: %w", err)
	}
	for _, group := range groups {
		if group.Name == name {
			return nil
		}
	}

	pk, err := findUserPk(ctx, api, akapi.APIUser)
	if err != nil {
		return err
	}

	_, err = api.CreateGroup(ctx, akapi.CreateGroupRequest{
		Name:        name,
		IsSuperuser: true,
		Users:       []int{pk},
	})
	if err != nil && !akapi.IsAlreadyExists(err) {
		return fmt.Errorf("creating service group: %w", err)
	}
	return nil
}

// mirrorTokenSecret copies the durable operator token into a Secret, so
// later reconciles no longer depend on the bootstrap token.
func (r *reconciler) mirrorTokenSecret(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) error {
	api := r.newAPI(ak.Name, ak.Namespace)

	_, valid, err := akapi.ResolveSecretToken(ctx, r.client, api, ak.Name, ak.Namespace)
	if err != nil {
		return err
	}
	if valid {
		return nil
	}

	token, err := akapi.ResolveToken(ctx, r.client, api, ak.Name, ak.Namespace)
	if err != nil {
		return err
	}

	key, err := api.WithToken(token).ViewTokenKey(ctx, akapi.TokenIdentifier(ak.Name))
	if err != nil {
		return fmt.Errorf("viewing operator token key: %w", err)
	}

	if err := util.Upsert(ctx, r.client, manifests.TokenSecret(ak, key)); err != nil {
		return fmt.Errorf("upserting token secret: %w", err)
	}
	logger.Info("mirrored operator token into secret")
	return nil
}

// removeOOBE deletes the out-of-box setup flow and the default admin
// account it creates. The operator owns all identity objects, the initial
// setup wizard would only hand out a second superuser.
func (r *reconciler) removeOOBE(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) error {
	api, err := r.authenticated(ctx, ak)
	if err != nil {
		return err
	}

	if err := api.DeleteFlow(ctx, "initial-setup"); err == nil {
		logger.Info("removed initial setup flow")
	} else if !akapi.IsNotFound(err) {
		return fmt.Errorf("deleting setup flow: %w", err)
	}

	stages, err := api.FindStages(ctx, "default-oobe-password")
	if err != nil {
		return fmt.Errorf("finding setup stage: %w", err)
	}
	for _, stage := range stages {
		if stage.Name != "default-oobe-password" {
			continue
		}
		if err := api.DeleteStage(ctx, stage.Pk); err != nil && !akapi.IsNotFound(err) {
			return fmt.Errorf("deleting setup stage: %w", err)
		}
	}

	users, err := api.FindUsers(ctx, "akadmin")
	if err != nil {
		return fmt.Errorf("finding default admin: %w", err)
	}
	for _, user := range users {
		if user.Username != "akadmin" {
			continue
		}
		if err := api.DeleteAccount(ctx, user.Pk); err != nil && !akapi.IsNotFound(err) {
			return fmt.Errorf("deleting default admin: %w", err)
		}
		logger.Info("removed default admin account")
	}

	groups, err := api.FindGroups(ctx, "authentik Admins")
	if err != nil {
		return fmt.Errorf("finding default admin group: %w", err)
	}
	for _, group := range groups {
		if group.Name != "authentik Admins" {
			continue
		}
		if err := api.DeleteGroup(ctx, group.Pk); err != nil && !akapi.IsNotFound(err) {
			return fmt.Errorf("deleting default admin group: %w", err)
		}
	}

	return nil
}

func (r *reconciler) cleanupServiceGroup(ctx context.Context, ak *akv1.Authentik) error {
	api, err := r.authenticated(ctx, ak)
	if err != nil {
		return err
	}

	name := akapi.ServiceGroupName(ak.Name)
	groups, err := api.FindGroups(ctx, name)
	if err != nil {
		return fmt.Errorf("finding service group: %w", err)
	}
	for _, group := range groups {
		if group.Name != name {
			continue
		}
		if err := api.DeleteGroup(ctx, group.Pk); err != nil && !akapi.IsNotFound(err) {
			return fmt.Errorf("deleting service group: %w", err)
		}
	}
	return nil
}

func (r *reconciler) cleanupServiceAccount(ctx context.Context, logger logr.Logger, ak *akv1.Authentik) error {
	api, err := r.authenticated(ctx, ak)
	if err != nil {
		return err
	}

	pk, err := findUserPk(ctx, api, akapi.APIUser)
	if akapi.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	// Deleting the account also revokes its tokens.
	if err := api.DeleteAccount(ctx, pk); err != nil && !akapi.IsNotFound(err) {
		return fmt.Errorf("deleting operator account: %w", err)
	}
	logger.Info("removed operator service account")
	return nil
}

func findUserPk(ctx context.Context, api *akapi.Client, username string) (int, error) {
	users, err := api.FindUsers(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("finding user %q: %w", username, err)
	}
	for _, user := range users {
		if user.Username == username {
			return user.Pk, nil
		}
	}
	return 0, &akapi.NotFoundError{Resource: fmt.Sprintf("user %q", username)}
}
