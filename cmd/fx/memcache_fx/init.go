package memcache_fx

import (
	"go.uber.org/fx"

	mem "journeys/pkg/memcache"
)

var Module = fx.Provide(provideMemcacheClient)

func provideMemcacheClient() mem.BlobStore {
	return mem.NewBlobs()
}
