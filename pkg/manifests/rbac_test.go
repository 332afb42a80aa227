package manifests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthentikServiceAccount(t *testing.T) {
	ak := testInstance()
	account := AuthentikServiceAccount(ak)

	require.Equal(t, "ak-foo", account.Name)
	require.Equal(t, "auth", account.Namespace)
	require.Len(t, account.OwnerReferences, 1)
	require.Equal(t, "Authentik", account.OwnerReferences[0].Kind)
}

func TestAuthentikClusterRole(t *testing.T) {
	ak := testInstance()
	role := AuthentikClusterRole(ak)

	require.Equal(t, "ak-foo", role.Name)
	// cluster-scoped, no owner ref, deleted explicitly during cleanup
	require.Empty(t, role.OwnerReferences)

	var coreResources []string
	for _, rule := range role.Rules {
		for _, group := range rule.APIGroups {
			if group == "" {
				coreResources = rule.Resources
			}
		}
	}
	require.ElementsMatch(t, []string{"secrets", "services", "configmaps"}, coreResources)
}

func TestAuthentikClusterRoleBinding(t *testing.T) {
	ak := testInstance()
	binding := AuthentikClusterRoleBinding(ak)

	require.Equal(t, "ak-foo", binding.Name)
	require.Empty(t, binding.OwnerReferences)
	require.Equal(t, "ClusterRole", binding.RoleRef.Kind)
	require.Equal(t, "ak-foo", binding.RoleRef.Name)
	require.Len(t, binding.Subjects, 1)
	require.Equal(t, "ServiceAccount", binding.Subjects[0].Kind)
	require.Equal(t, "ak-foo", binding.Subjects[0].Name)
	require.Equal(t, "auth", binding.Subjects[0].Namespace)
}
