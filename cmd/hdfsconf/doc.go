// Package main is the hdfsconf inspection tool.
//
// It resolves the effective HDFS client configuration from the
// environment and prints the selected client backend, the hadoop CLI
// invocation, the protocol version, and a sample staging path for a
// target, so operators can verify what a workflow run would use.
//
// Configuration:
//   - Environment variables (12-factor), see package config
//   - CLI flags for per-invocation inputs
//
// Usage:
//
//	# What would a run on this host use?
//	HDFS_CLIENT=snakebite hdfsconf -snakebite
//
//	# Where would a write to this target be staged?
//	hdfsconf -path hdfs://nn:8020/data/part-0000
package main
