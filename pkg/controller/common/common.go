package common

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/util/workqueue"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/predicate"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/dsluijk/authentik-operator/pkg/manifests"
)

// SpecFieldManager owns spec fields the operator autofills, distinct from
// the manager used for child objects so user edits stay distinguishable.
const SpecFieldManager = "authentik.ak-operator"

const (
	// SuccessRequeue re-observes healthy resources to pick up drift in the
	// identity provider.
	SuccessRequeue = 30 * time.Minute

	// AutofillRequeue is used after writing generated defaults back into a
	// spec. The reconcile restarts once the updated spec is observed.
	AutofillRequeue = time.Second

	errorRequeue = 60 * time.Second
)

// NewErrorRateLimiter requeues failed reconciles at a constant delay.
// Eventual consistency between the custom resources does the rest: a
// reconcile that failed on a missing reference succeeds once the
// referenced object has been created.
func NewErrorRateLimiter() workqueue.TypedRateLimiter[reconcile.Request] {
	return workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](errorRequeue, errorRequeue)
}

// OwnedPredicate filters ownership watch events down to children carrying
// the operator's labels for the given kind tag.
func OwnedPredicate(partOf string) predicate.Predicate {
	selector := labels.SelectorFromSet(manifests.OwnedSelector(partOf))
	return predicate.NewPredicateFuncs(func(obj client.Object) bool {
		return selector.Matches(labels.Set(obj.GetLabels()))
	})
}

// PatchSpec writes generated spec fields back to the API server. The patch
// is a diff against the observed object, so only the autofilled fields are
// sent and user-managed fields are never overwritten.
func PatchSpec(ctx context.Context, c client.Client, updated, observed client.Object) error {
	return c.Patch(ctx, updated, client.MergeFrom(observed), client.FieldOwner(SpecFieldManager))
}
