// Package hdfs decides which HDFS client backend to use and where staged
// writes are placed.
//
// Client selection is configured through the HDFS_CLIENT setting.
// "hadoopcli" is the slowest but works out of the box; "snakebite" is the
// fastest but requires the native protocol client, so the resolver falls
// back to "hadoopcli" when the host reports it unavailable.
//
// The package performs no filesystem or network I/O. Backend
// implementations live in driver modules and register themselves through
// Register; staged-write workflows call TmpPath before renaming into the
// final target.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	r := hdfs.NewResolver(cfg, logger, snakebiteAvailable)
//	client, err := hdfs.New(r)
//
//	staging, err := hdfs.TmpPath(cfg, "hdfs://nn:8020/data/part-0000", true)
package hdfs
