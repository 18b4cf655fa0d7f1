package hdfs

import (
	"fmt"
	"net"
	"os/user"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hdfskit/hdfskit/config"
)

// Known hadoop CLI syntax generations. CDH4 (hadoop 2+) has a slightly
// different command-line syntax than the older cdh3 and apache1
// generations.
const (
	VersionCDH4    = "cdh4"
	VersionCDH3    = "cdh3"
	VersionApache1 = "apache1"
)

// currentUser reports the OS user identity; swappable in tests.
var currentUser = user.Current

// Resolver exposes the effective client-selection settings, applying
// defaults and the snakebite compatibility override.
//
// All methods are total over the settings; none of them errors except
// EffectiveUser, which may fail on OS user lookup.
type Resolver struct {
	cfg                *config.Settings
	log                *zap.Logger
	snakebiteAvailable bool
}

// NewResolver creates a resolver over immutable settings.
//
// snakebiteAvailable is decided once by the host environment: whether the
// native protocol backend can actually run in this process. A nil logger
// silences the compatibility warning; nil settings mean defaults.
func NewResolver(cfg *config.Settings, logger *zap.Logger, snakebiteAvailable bool) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		cfg:                cfg,
		log:                logger,
		snakebiteAvailable: snakebiteAvailable,
	}
}

// Settings returns the settings the resolver was constructed with.
func (r *Resolver) Settings() *config.Settings {
	return r.cfg
}

// Client returns the configured client backend identifier.
//
// When a snakebite-family client is configured but the backend is not
// available in this runtime, Client falls back to "hadoopcli" and emits a
// single warning. Unrecognized identifiers pass through unchanged;
// legality is checked by whoever instantiates the client.
func (r *Resolver) Client() string {
	client := r.cfg.HDFS.Client
	if client == "" {
		client = ClientHadoopCLI
	}
	if !r.snakebiteAvailable && usesSnakebite(client) {
		r.log.Warn("snakebite client not available in this runtime, falling back on hadoopcli",
			zap.String("configured_client", client))
		return ClientHadoopCLI
	}
	return client
}

// HadoopCommand returns the hadoop invocation split into argument tokens,
// so operators can inject extra flags ("hadoop --config /etc/hadoop").
//
// Splitting is on whitespace only. There are no shell-quoting semantics:
// a quoted argument with embedded spaces will be split apart.
func (r *Resolver) HadoopCommand() []string {
	command := r.cfg.HadoopCLI.Command
	if command == "" {
		command = "hadoop"
	}
	return strings.Fields(command)
}

// HadoopVersion returns the configured CLI syntax generation, lower-cased.
// The default is cdh4; cdh3 or apache1 select the old syntax.
func (r *Resolver) HadoopVersion() string {
	version := r.cfg.HadoopCLI.Version
	if version == "" {
		version = VersionCDH4
	}
	return strings.ToLower(version)
}

// EffectiveUser returns the identity native clients should act as: the
// configured effective user (fed by HADOOP_USER_NAME) or, when unset, the
// OS user. A failed OS lookup propagates; substituting a wrong identity
// for a per-user namespace would be unsafe.
func (r *Resolver) EffectiveUser() (string, error) {
	if u := r.cfg.HDFS.EffectiveUser; u != "" {
		return u, nil
	}
	u, err := currentUser()
	if err != nil {
		return "", fmt.Errorf("look up current user: %w", err)
	}
	return u.Username, nil
}

// NamenodeAddress returns the configured "host:port" namenode endpoint
// for native protocol clients, or ok=false when not fully configured.
func (r *Resolver) NamenodeAddress() (addr string, ok bool) {
	host := r.cfg.HDFS.NamenodeHost
	port := r.cfg.HDFS.NamenodePort
	if host == "" || port == 0 {
		return "", false
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), true
}

// SnakebiteAutoconfig reports whether the client factory should discover
// the active namenode from the HA configuration instead of using
// NamenodeAddress.
func (r *Resolver) SnakebiteAutoconfig() bool {
	return r.cfg.HDFS.SnakebiteAutoconfig
}

func usesSnakebite(client string) bool {
	return client == ClientSnakebite || client == ClientSnakebiteFallback
}
