// Package controller assembles the manager that runs the operator's
// reconcilers.
package controller

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/config"
	"github.com/dsluijk/authentik-operator/pkg/controller/application"
	"github.com/dsluijk/authentik-operator/pkg/controller/group"
	"github.com/dsluijk/authentik-operator/pkg/controller/instance"
	"github.com/dsluijk/authentik-operator/pkg/controller/oauthprovider"
	"github.com/dsluijk/authentik-operator/pkg/controller/user"
)

var scheme = runtime.NewScheme()

func init() {
	registerSchemes(scheme)
}

func registerSchemes(s *runtime.Scheme) {
	utilruntime.Must(clientgoscheme.AddToScheme(s))
	utilruntime.Must(apiextensionsv1.AddToScheme(s))
	utilruntime.Must(akv1.AddToScheme(s))
}

// GetLogger returns a structured logger at the given level. Unknown levels
// fall back to info.
func GetLogger(level string, opts ...zap.Opts) logr.Logger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	// use raw opts to add caller info to logs
	rawOpts := zap.RawZapOpts(ubzap.AddCaller())

	return zap.New(append(opts, zap.Level(parsed), rawOpts)...)
}

func NewManager(conf *config.Config) (ctrl.Manager, error) {
	logger := GetLogger(conf.LogLevel)
	ctrl.SetLogger(logger)
	// client-go logs through klog, keep it on the same sink for a consistent
	// format across all logs.
	klog.SetLogger(logger)

	return NewManagerForRestConfig(conf, ctrl.GetConfigOrDie())
}

func NewManagerForRestConfig(conf *config.Config, rc *rest.Config) (ctrl.Manager, error) {
	m, err := ctrl.NewManager(rc, ctrl.Options{
		Metrics: metricsserver.Options{BindAddress: conf.MetricsAddr},
		Scheme:  scheme,

		// the operator runs as a single replica
		LeaderElection: false,
	})
	if err != nil {
		return nil, err
	}

	setupLog := m.GetLogger().WithName("setup")

	// non-caching client for use before the manager has started
	cl, err := client.New(rc, client.Options{Scheme: scheme})
	if err != nil {
		return nil, err
	}

	if err := loadCRDs(context.Background(), cl, setupLog); err != nil {
		return nil, fmt.Errorf("loading CRDs: %w", err)
	}

	if err := setupControllers(m, setupLog); err != nil {
		return nil, fmt.Errorf("setting up controllers: %w", err)
	}

	return m, nil
}

func setupControllers(mgr ctrl.Manager, lgr logr.Logger) error {
	lgr.Info("setting up controllers")

	lgr.Info("setting up instance reconciler")
	if err := instance.NewReconciler(mgr); err != nil {
		return fmt.Errorf("setting up instance reconciler: %w", err)
	}

	lgr.Info("setting up group reconciler")
	if err := group.NewReconciler(mgr); err != nil {
		return fmt.Errorf("setting up group reconciler: %w", err)
	}

	lgr.Info("setting up user reconciler")
	if err := user.NewReconciler(mgr); err != nil {
		return fmt.Errorf("setting up user reconciler: %w", err)
	}

	lgr.Info("setting up oauth provider reconciler")
	if err := oauthprovider.NewReconciler(mgr); err != nil {
		return fmt.Errorf("setting up oauth provider reconciler: %w", err)
	}

	lgr.Info("setting up application reconciler")
	if err := application.NewReconciler(mgr); err != nil {
		return fmt.Errorf("setting up application reconciler: %w", err)
	}

	lgr.Info("finished setting up controllers")
	return nil
}
