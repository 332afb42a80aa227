package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	AkReconcileTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ak_reconcile_total",
		Help: "Total number of reconciliations per controller",
	}, []string{"controller", "result"})

	AkReconcileErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ak_reconcile_errors_total",
		Help: "Total number of reconciliation errors per controller",
	}, []string{"controller"})

	AkApiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ak_api_requests_total",
		Help: "Total number of requests to the Authentik API by method and status",
	}, []string{"method", "status"})

	AkApiRequestErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ak_api_request_errors_total",
		Help: "Total number of Authentik API requests that failed in transport",
	})
)

const (
	LabelError        = "error"
	LabelRequeueAfter = "requeue_after"
	LabelRequeue      = "requeue"
	LabelSuccess      = "success"
)

func init() {
	metrics.Registry.MustRegister(AkReconcileTotal, AkReconcileErrors, AkApiRequestsTotal, AkApiRequestErrors)
}

// HandleControllerReconcileMetrics is meant to be called within a defer for each controller.
// This lets us put all the metric handling in one place, rather than duplicating it in every controller
func HandleControllerReconcileMetrics(controllerName string, result ctrl.Result, err error) {
	switch {
	// apierrors.IsNotFound is ignored by controllers so this should too
	case err != nil && !apierrors.IsNotFound(err):
		AkReconcileTotal.WithLabelValues(controllerName, LabelError).Inc()
		AkReconcileErrors.WithLabelValues(controllerName).Inc()
	case result.RequeueAfter > 0:
		AkReconcileTotal.WithLabelValues(controllerName, LabelRequeueAfter).Inc()
	case result.Requeue:
		AkReconcileTotal.WithLabelValues(controllerName, LabelRequeue).Inc()
	default:
		AkReconcileTotal.WithLabelValues(controllerName, LabelSuccess).Inc()
	}
}

func InitControllerMetrics(controllerName string) {
	AkReconcileTotal.WithLabelValues(controllerName, LabelError).Add(0)
	AkReconcileTotal.WithLabelValues(controllerName, LabelRequeueAfter).Add(0)
	AkReconcileTotal.WithLabelValues(controllerName, LabelRequeue).Add(0)
	AkReconcileTotal.WithLabelValues(controllerName, LabelSuccess).Add(0)

	AkReconcileErrors.WithLabelValues(controllerName).Add(0)
}
