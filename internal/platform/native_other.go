//go:build !linux && !windows

package platform

import "fmt"

func newNativeBackend(ctx any) (Backend, error) {
	return nil, fmt.Errorf("%w: native context %T", ErrUnsupported, ctx)
}
