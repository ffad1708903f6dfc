package factory

import (
	"context"

	"github.com/flashstake/flashstake-deploy/chain"
)

func SetBackend(backend chain.Backend) {
	injectableDial = func(context.Context, string) (chain.Backend, func(), error) {
		return backend, func() {}, nil
	}
}

func ResetBackend() {
	injectableDial = dialNode
}
