package manifests

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/util"
)

// Kind tags distinguishing which controller owns a child object. Ownership
// watches select on these.
const (
	PartOfInstance = "ak-ak"
	PartOfUser     = "ak-user"
	PartOfOAuth    = "ak-provider-oauth"
)

const createdBy = "authentik-operator"

// MatchingLabels is the stable label subset used in Deployment selectors
// and Service selectors. It must never include the version label.
func MatchingLabels(instance, component string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":      "authentik",
		"app.kubernetes.io/part-of":   PartOfInstance,
		"app.kubernetes.io/instance":  instance,
		"app.kubernetes.io/component": component,
	}
}

// InstanceLabels is the full label set applied to objects owned by an
// Authentik instance.
func InstanceLabels(instance, version, component string) map[string]string {
	return util.MergeMaps(MatchingLabels(instance, component), map[string]string{
		"app.kubernetes.io/created-by": createdBy,
		"app.kubernetes.io/version":    version,
	})
}

// KindLabels is the label set applied to objects owned by the identity
// custom resources, tagged with the owning kind.
func KindLabels(instance, component, partOf string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       "authentik",
		"app.kubernetes.io/part-of":    partOf,
		"app.kubernetes.io/instance":   instance,
		"app.kubernetes.io/component":  component,
		"app.kubernetes.io/created-by": createdBy,
	}
}

// OwnedSelector selects the children of the given kind tag for ownership
// watches.
func OwnedSelector(partOf string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/created-by": createdBy,
		"app.kubernetes.io/name":       "authentik",
		"app.kubernetes.io/part-of":    partOf,
	}
}

// Kubernetes object names derived from the instance name.
func ServerDeploymentName(instance string) string { return fmt.Sprintf("authentik-%s-server", instance) }
func WorkerDeploymentName(instance string) string { return fmt.Sprintf("authentik-%s-worker", instance) }
func ServiceName(instance string) string          { return fmt.Sprintf("authentik-%s", instance) }
func IngressName(instance string) string          { return fmt.Sprintf("authentik-%s", instance) }
func AccountName(instance string) string          { return fmt.Sprintf("ak-%s", instance) }

// UserSecretName holds the provisioned password of an AuthentikUser.
func UserSecretName(instance, crName string) string {
	return fmt.Sprintf("ak-%s-user-%s", instance, crName)
}

// OAuthSecretName holds the client credentials of an AuthentikOAuthProvider.
func OAuthSecretName(instance, crName string) string {
	return fmt.Sprintf("ak-%s-oauth-%s", instance, crName)
}

func ownerRef(kind string, owner metav1.Object) metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion: akv1.GroupVersion.String(),
		Kind:       kind,
		Name:       owner.GetName(),
		UID:        owner.GetUID(),
		Controller: util.BoolPtr(true),
	}
}
