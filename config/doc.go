// Package config provides 12-factor configuration for the HDFS client layer.
//
// Settings are loaded from environment variables with sensible defaults and
// are immutable after load. Both the client resolver and the temp-path
// generator take them by reference at construction time; there is no
// ambient global lookup.
//
// Configuration Sections:
//   - HDFS: client selection, namenode location, effective user, temp dir
//   - HadoopCLI: hadoop command line and CLI syntax generation
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("hdfs client: %s\n", cfg.HDFS.Client)
//
// Environment Variables:
//   - HDFS_CLIENT, HDFS_TMP_DIR, HDFS_NAMENODE_HOST, HDFS_NAMENODE_PORT
//   - HDFS_CLIENT_VERSION, HDFS_SNAKEBITE_AUTOCONFIG, HADOOP_USER_NAME
//   - HADOOP_COMMAND, HADOOP_VERSION
package config
