package testutils

import (
	"testing"

	"github.com/dsluijk/authentik-operator/pkg/controller/controllername"
	"github.com/dsluijk/authentik-operator/pkg/controller/metrics"
	promDTO "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func GetErrMetricCount(t *testing.T, controllerName controllername.ControllerNamer) float64 {
	errMetric, err := metrics.AkReconcileErrors.GetMetricWithLabelValues(controllerName.MetricsName())
	require.NoError(t, err)

	metricProto := &promDTO.Metric{}

	err = errMetric.Write(metricProto)
	require.NoError(t, err)

	return metricProto.GetCounter().GetValue()
}

func GetReconcileMetricCount(t *testing.T, controllerName controllername.ControllerNamer, label string) float64 {
	reconcileMetric, err := metrics.AkReconcileTotal.GetMetricWithLabelValues(controllerName.MetricsName(), label)
	require.NoError(t, err)

	metricProto := &promDTO.Metric{}

	err = reconcileMetric.Write(metricProto)
	require.NoError(t, err)

	return metricProto.GetCounter().GetValue()
}

func RegisterSchemes(t *testing.T, builder *fake.ClientBuilder, regFuncs ...func(s *runtime.Scheme) error) *fake.ClientBuilder {
	scheme := runtime.NewScheme()
	for _, regFunc := range regFuncs {
		require.NoError(t, regFunc(scheme))
	}

	return builder.WithScheme(scheme)
}
