package hdfs

import "context"

// Known client backend identifiers.
const (
	ClientHadoopCLI         = "hadoopcli"
	ClientSnakebite         = "snakebite"
	ClientSnakebiteFallback = "snakebite_with_hadoopcli_fallback"
	ClientWebHDFS           = "webhdfs"
)

// Client is the surface shared by all HDFS backends. Implementations live
// in driver modules; this package only decides which one to construct.
type Client interface {
	// Exists reports whether path exists in the filesystem namespace.
	Exists(ctx context.Context, path string) (bool, error)

	// Mkdir creates a directory, including missing parents.
	Mkdir(ctx context.Context, path string) error

	// Rename moves src to dst. Rename into an existing directory places
	// src inside it, matching HDFS move semantics.
	Rename(ctx context.Context, src, dst string) error

	// Remove deletes path, recursively when it is a directory.
	Remove(ctx context.Context, path string, recursive bool) error
}
