package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/dsluijk/authentik-operator/pkg/config"
	"github.com/dsluijk/authentik-operator/pkg/controller"
)

func main() {
	if err := run(); err != nil {
		lgr := controller.GetLogger("info")
		lgr.Error(err, "failed to run operator")
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	mgr, err := controller.NewManager(conf)
	if err != nil {
		return err
	}

	ctx := ctrl.SetupSignalHandler()

	var eg errgroup.Group
	eg.Go(func() error {
		return mgr.Start(ctx)
	})
	eg.Go(func() error {
		return serveHealth(ctx, conf.HealthAddr)
	})

	return eg.Wait()
}

// serveHealth answers liveness probes independently of the manager.
func serveHealth(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("healthy"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}
