package controller

import (
	"context"
	"embed"
	"fmt"
	"path"

	"github.com/go-logr/logr"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"

	"github.com/dsluijk/authentik-operator/pkg/util"
)

//go:embed crds/*.yaml
var crdFS embed.FS

// loadCRDs applies the bundled CRDs into the cluster so the watches start
// against definitions matching this build.
func loadCRDs(ctx context.Context, c client.Client, log logr.Logger) error {
	files, err := crdFS.ReadDir("crds")
	if err != nil {
		return fmt.Errorf("reading crd directory: %w", err)
	}

	log.Info("applying crds")
	for _, file := range files {
		content, err := crdFS.ReadFile(path.Join("crds", file.Name()))
		if err != nil {
			return fmt.Errorf("reading crd file %s: %w", file.Name(), err)
		}

		crd := &apiextensionsv1.CustomResourceDefinition{}
		if err := yaml.UnmarshalStrict(content, crd); err != nil {
			return fmt.Errorf("unmarshalling crd file %s: %w", file.Name(), err)
		}

		if err := util.Upsert(ctx, c, crd); err != nil {
			return fmt.Errorf("upserting crd %s: %w", crd.Name, err)
		}
		log.Info("applied crd", "name", crd.Name)
	}

	log.Info("crds loaded")
	return nil
}
