package manifests

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
)

// TokenSecret mirrors the operator's durable API token into the cluster.
func TokenSecret(ak *akv1.Authentik, token string) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            akapi.TokenSecretName(ak.Name),
			Namespace:       ak.Namespace,
			Labels:          InstanceLabels(ak.Name, ak.Spec.Image.Tag, "secret"),
			OwnerReferences: []metav1.OwnerReference{ownerRef("Authentik", ak)},
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			akapi.TokenSecretField: token,
		},
	}
}

// UserSecret holds the provisioned credentials of an AuthentikUser.
func UserSecret(user *akv1.AuthentikUser, password string) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            UserSecretName(user.Spec.AuthentikInstance, user.Name),
			Namespace:       user.Namespace,
			Labels:          KindLabels(user.Spec.AuthentikInstance, "password", PartOfUser),
			OwnerReferences: []metav1.OwnerReference{ownerRef("AuthentikUser", user)},
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			"username": user.Spec.Username,
			"email":    user.Spec.Email,
			"password": password,
		},
	}
}

// OAuthSecret projects the client credentials of a live OAuth2 provider.
// The provider as it exists in Authentik is the source of truth, not the
// custom resource.
func OAuthSecret(provider *akv1.AuthentikOAuthProvider, live akapi.OAuthProvider) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            OAuthSecretName(provider.Spec.AuthentikInstance, provider.Name),
			Namespace:       provider.Namespace,
			Labels:          KindLabels(provider.Spec.AuthentikInstance, "secret", PartOfOAuth),
			OwnerReferences: []metav1.OwnerReference{ownerRef("AuthentikOAuthProvider", provider)},
		},
		Type: corev1.SecretTypeOpaque,
		StringData: map[string]string{
			"clientType":   live.ClientType,
			"clientId":     live.ClientID,
			"clientSecret": live.ClientSecret,
			"redirectUris": live.RedirectURIs,
		},
	}
}
