package instance

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/manifests"
	"github.com/dsluijk/authentik-operator/pkg/util"
)

const (
	serverPollInterval = 5 * time.Second
	serverPollTimeout  = 3 * time.Minute
)

func (r *reconciler) applyRBAC(ctx context.Context, ak *akv1.Authentik) error {
	objs := []client.Object{
		manifests.AuthentikServiceAccount(ak),
		manifests.AuthentikClusterRole(ak),
		manifests.AuthentikClusterRoleBinding(ak),
	}
	for _, obj := range objs {
		if err := util.Upsert(ctx, r.client, obj); err != nil {
			return err
		}
	}
	return nil
}

func (r *reconciler) applyWorkload(ctx context.Context, ak *akv1.Authentik) error {
	for _, deploy := range manifests.AuthentikDeployments(ak) {
		if err := util.Upsert(ctx, r.client, deploy); err != nil {
			return err
		}
	}
	return nil
}

func (r *reconciler) applyService(ctx context.Context, ak *akv1.Authentik) error {
	return util.Upsert(ctx, r.client, manifests.AuthentikService(ak))
}

// applyIngress reconciles the instance Ingress, deleting it when the spec no
// longer asks for one.
func (r *reconciler) applyIngress(ctx context.Context, ak *akv1.Authentik) error {
	if ak.Spec.Ingress == nil {
		ingress := &networkingv1.Ingress{}
		ingress.Name = manifests.IngressName(ak.Name)
		ingress.Namespace = ak.Namespace
		return client.IgnoreNotFound(r.client.Delete(ctx, ingress))
	}

	return util.Upsert(ctx, r.client, manifests.AuthentikIngress(ak))
}

// waitForServer blocks until a server pod reports its container ready. The
// bootstrap stages need a reachable API, and the server takes a while to
// come up after the first deploy.
func (r *reconciler) waitForServer(ctx context.Context, ak *akv1.Authentik) error {
	interval, timeout := r.pollInterval, r.pollTimeout
	if interval == 0 {
		interval = serverPollInterval
	}
	if timeout == 0 {
		timeout = serverPollTimeout
	}

	container := manifests.ServerDeploymentName(ak.Name)
	err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, func(ctx context.Context) (bool, error) {
		pods := &corev1.PodList{}
		err := r.client.List(ctx, pods,
			client.InNamespace(ak.Namespace),
			client.MatchingLabels(manifests.MatchingLabels(ak.Name, "server")),
		)
		if err != nil {
			return false, err
		}

		for _, pod := range pods.Items {
			for _, status := range pod.Status.ContainerStatuses {
				if status.Name == container && status.Ready {
					return true, nil
				}
			}
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("server pod for instance %q not ready: %w", ak.Name, err)
	}
	return nil
}
