package util

import (
	"context"
	"crypto/rand"
	"flag"
	"math/big"

	"k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// FieldOwner is the manager name used for every server-side apply against
// Kubernetes objects owned by the operator.
const FieldOwner = "ak-operator"

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func Upsert(ctx context.Context, c client.Client, res client.Object) error {
	// Use server-side apply to update resources and fall back to merge patch when
	// using fake clients in unit tests since they don't support SSA
	var patchType = client.Apply
	if flag.Lookup("test.v") != nil {
		patchType = client.Merge
	}

	err := c.Patch(ctx, res, patchType, client.FieldOwner(FieldOwner), client.ForceOwnership)
	if errors.IsNotFound(err) {
		err = c.Create(ctx, res)
	}
	return err
}

// RandomSecret returns a random alphanumeric string of the given length,
// suitable for passwords, signing keys and client secrets.
func RandomSecret(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(alphanumerics)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphanumerics[n.Int64()]
	}
	return string(buf), nil
}

// MergeMaps merges multiple maps into one, with later maps winning on
// conflicting keys.
func MergeMaps[K comparable, V any](maps ...map[K]V) map[K]V {
	merged := map[K]V{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

func Int32Ptr(i int32) *int32 { return &i }
func Int64Ptr(i int64) *int64 { return &i }
func BoolPtr(b bool) *bool    { return &b }
