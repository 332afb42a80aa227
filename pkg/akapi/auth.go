package akapi

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// TokenSecretField is the key holding the bearer token inside the operator
// token Secret.
const TokenSecretField = "token"

// ResolveToken returns a bearer token for the instance that was just
// validated against the API.
//
// The durable token mirrored in the operator token Secret is preferred. The
// well-known bootstrap token is only accepted as a fallback, covering the
// window between first deploy and the durable token's creation. A stale
// secret token is never trusted.
func ResolveToken(ctx context.Context, kube client.Client, api *Client, instance, namespace string) (string, error) {
	secret := &corev1.Secret{}
	err := kube.Get(ctx, types.NamespacedName{Name: TokenSecretName(instance), Namespace: namespace}, secret)
	switch {
	case apierrors.IsNotFound(err):
	case err != nil:
		return "", fmt.Errorf("getting operator token secret: %w", err)
	default:
		if token, ok := secret.Data[TokenSecretField]; ok {
			_, selfErr := api.WithToken(string(token)).GetSelf(ctx)
			switch {
			case selfErr == nil:
				return string(token), nil
			case IsForbidden(selfErr):
				// stale token, fall through to the bootstrap token
			default:
				return "", selfErr
			}
		}
	}

	if _, err := api.WithToken(TempAuthToken).GetSelf(ctx); err != nil {
		if IsForbidden(err) {
			return "", fmt.Errorf("no valid token for instance %q", instance)
		}
		return "", err
	}
	return TempAuthToken, nil
}

// ResolveSecretToken returns the token stored in the operator token Secret
// if it exists and still validates. ok is false when the Secret is missing,
// lacks the token field, or carries a stale token.
func ResolveSecretToken(ctx context.Context, kube client.Client, api *Client, instance, namespace string) (token string, ok bool, err error) {
	secret := &corev1.Secret{}
	err = kube.Get(ctx, types.NamespacedName{Name: TokenSecretName(instance), Namespace: namespace}, secret)
	if apierrors.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting operator token secret: %w", err)
	}

	raw, exists := secret.Data[TokenSecretField]
	if !exists {
		return "", false, nil
	}

	if _, err := api.WithToken(string(raw)).GetSelf(ctx); err != nil {
		if IsForbidden(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(raw), true, nil
}

// NewAuthenticatedClient builds a client for the instance carrying a token
// resolved through ResolveToken.
func NewAuthenticatedClient(ctx context.Context, kube client.Client, instance, namespace string) (*Client, error) {
	api := NewClient(Opts{Instance: instance, Namespace: namespace})
	token, err := ResolveToken(ctx, kube, api, instance, namespace)
	if err != nil {
		return nil, err
	}
	return api.WithToken(token), nil
}
