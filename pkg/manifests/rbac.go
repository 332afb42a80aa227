package manifests

import (
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
)

// AuthentikServiceAccount builds the ServiceAccount the instance pods run
// as.
func AuthentikServiceAccount(ak *akv1.Authentik) *corev1.ServiceAccount {
	return &corev1.ServiceAccount{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ServiceAccount",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            AccountName(ak.Name),
			Namespace:       ak.Namespace,
			Labels:          InstanceLabels(ak.Name, ak.Spec.Image.Tag, "clusteraccount"),
			OwnerReferences: []metav1.OwnerReference{ownerRef("Authentik", ak)},
		},
	}
}

// AuthentikClusterRole builds the ClusterRole granting Authentik the
// permissions its outpost integrations manage resources with.
func AuthentikClusterRole(ak *akv1.Authentik) *rbacv1.ClusterRole {
	return &rbacv1.ClusterRole{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "rbac.authorization.k8s.io/v1",
			Kind:       "ClusterRole",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   AccountName(ak.Name),
			Labels: InstanceLabels(ak.Name, ak.Spec.Image.Tag, "clusteraccount"),
		},
		Rules: []rbacv1.PolicyRule{
			{
				APIGroups: []string{""},
				Resources: []string{"secrets", "services", "configmaps"},
				Verbs:     []string{"*"},
			},
			{
				APIGroups: []string{"extensions", "apps"},
				Resources: []string{"deployments"},
				Verbs:     []string{"*"},
			},
			{
				APIGroups: []string{"extensions", "networking.k8s.io"},
				Resources: []string{"ingresses"},
				Verbs:     []string{"*"},
			},
			{
				APIGroups: []string{"traefik.containo.us"},
				Resources: []string{"middlewares"},
				Verbs:     []string{"*"},
			},
			{
				APIGroups: []string{"monitoring.coreos.com"},
				Resources: []string{"servicemonitors"},
				Verbs:     []string{"*"},
			},
			{
				APIGroups: []string{"apiextensions.k8s.io"},
				Resources: []string{"customresourcedefinitions"},
				Verbs:     []string{"*"},
			},
		},
	}
}

// AuthentikClusterRoleBinding binds the ClusterRole to the instance's
// ServiceAccount. Cluster-scoped, so cleanup deletes it explicitly.
func AuthentikClusterRoleBinding(ak *akv1.Authentik) *rbacv1.ClusterRoleBinding {
	return &rbacv1.ClusterRoleBinding{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "rbac.authorization.k8s.io/v1",
			Kind:       "ClusterRoleBinding",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   AccountName(ak.Name),
			Labels: InstanceLabels(ak.Name, ak.Spec.Image.Tag, "clusteraccount"),
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: "rbac.authorization.k8s.io",
			Kind:     "ClusterRole",
			Name:     AccountName(ak.Name),
		},
		Subjects: []rbacv1.Subject{{
			Kind:      "ServiceAccount",
			Name:      AccountName(ak.Name),
			Namespace: ak.Namespace,
		}},
	}
}
