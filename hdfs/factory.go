package hdfs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hdfskit/hdfskit/config"
)

// ErrClientNotRegistered is returned by New when the resolved backend has
// no registered factory.
var ErrClientNotRegistered = errors.New("hdfs client not registered")

// Factory builds a Client from resolved settings.
type Factory func(cfg *config.Settings) (Client, error)

var (
	clientFactories = make(map[string]Factory)
	factoryMutex    sync.RWMutex
)

// Register registers a client factory under a backend identifier.
// Driver modules call this from their init functions.
func Register(name string, factory Factory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	clientFactories[name] = factory
}

// New builds the client the resolver selects. The resolver's
// compatibility fallback applies before lookup, so a snakebite
// configuration on a host without snakebite constructs the hadoopcli
// backend instead.
func New(r *Resolver) (Client, error) {
	name := r.Client()

	factoryMutex.RLock()
	factory, exists := clientFactories[name]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrClientNotRegistered, name)
	}

	return factory(r.Settings())
}
