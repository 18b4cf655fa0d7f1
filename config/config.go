package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds all resolved process configuration.
//
// Settings are loaded once and treated as read-only afterwards; both the
// client resolver and the temp-path generator receive them by reference
// and never mutate them.
type Settings struct {
	HDFS      HDFSConfig
	HadoopCLI HadoopCLIConfig
}

// HDFSConfig governs distributed-filesystem client selection.
type HDFSConfig struct {
	// ClientVersion pins the protocol version used by native clients.
	// Zero means unset.
	ClientVersion int `envconfig:"HDFS_CLIENT_VERSION" default:"0"`

	// EffectiveUser is the identity native clients act as. Defaults from
	// HADOOP_USER_NAME; when empty the OS user is used instead.
	EffectiveUser string `envconfig:"HADOOP_USER_NAME"`

	// SnakebiteAutoconfig enables HA namenode autodiscovery in the
	// external client factory.
	SnakebiteAutoconfig bool `envconfig:"HDFS_SNAKEBITE_AUTOCONFIG" default:"false"`

	// NamenodeHost and NamenodePort locate the namenode for native
	// protocol clients. Zero port means unset.
	NamenodeHost string `envconfig:"HDFS_NAMENODE_HOST"`
	NamenodePort int    `envconfig:"HDFS_NAMENODE_PORT" default:"0"`

	// Client selects the backend implementation. "hadoopcli" is the
	// slowest but works out of the box; "snakebite" is the fastest but
	// needs the native protocol client available.
	Client string `envconfig:"HDFS_CLIENT" default:"hadoopcli"`

	// TmpDir overrides the base directory for staged writes. Empty means
	// derive it from the target path.
	TmpDir string `envconfig:"HDFS_TMP_DIR"`
}

// HadoopCLIConfig governs the external hadoop CLI backend.
type HadoopCLIConfig struct {
	// Command is the hadoop invocation, split on whitespace, so extra
	// flags can be injected ("hadoop --config /etc/hadoop").
	Command string `envconfig:"HADOOP_COMMAND" default:"hadoop"`

	// Version selects the CLI syntax generation: cdh4 (hadoop 2+),
	// cdh3, or apache1.
	Version string `envconfig:"HADOOP_VERSION" default:"cdh4"`
}

// Load loads settings from environment variables.
func Load() (*Settings, error) {
	var cfg Settings
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads settings from environment or returns defaults.
func LoadOrDefault() *Settings {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default settings.
func Default() *Settings {
	return &Settings{
		HDFS: HDFSConfig{
			Client: "hadoopcli",
		},
		HadoopCLI: HadoopCLIConfig{
			Command: "hadoop",
			Version: "cdh4",
		},
	}
}
