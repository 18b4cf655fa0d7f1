package hdfs

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/hdfskit/hdfskit/config"
)

const (
	// tempPrefix marks staged artifacts so cleanup scans can find them.
	tempPrefix = "luigitemp-"

	// defaultTempDir is the fixed local temp namespace used when no
	// override is configured.
	defaultTempDir = "/tmp"
)

// TmpPath computes a temporary staging path for target.
//
// The result is base directory + per-user segment (when includeUser) + a
// sanitized echo of the target's path + a random 128-bit suffix. The
// random suffix is the sole collision-avoidance mechanism: no existence
// check is performed, so concurrent callers never coordinate. All paths
// generated for the same base directory are siblings under it, which
// keeps cleanup scans cheap.
//
// An empty target means "no specific target": the result is just the base
// directory plus the random suffix (and user segment).
//
// The base directory is HDFS.TmpDir when set; otherwise it mirrors the
// target's scheme and authority with the fixed local path /tmp, so the
// artifact lands on the same cluster as its eventual destination.
//
// Note the doubled-prefix protection compares the target against the
// literal "/tmp/", not the resolved base directory; with a TmpDir
// override it does not apply. Known limitation, kept for compatibility.
func TmpPath(cfg *config.Settings, target string, includeUser bool) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	addon := tempPrefix + randomToken()

	// 1. Base directory: the configured override wins unconditionally.
	var baseDir string
	switch {
	case cfg.HDFS.TmpDir != "":
		baseDir = cfg.HDFS.TmpDir
	case target != "":
		parsed, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("parse target path %q: %w", target, err)
		}
		base := url.URL{
			Scheme: parsed.Scheme,
			User:   parsed.User,
			Host:   parsed.Host,
			Path:   defaultTempDir,
			// keep hdfs:/a targets from growing an empty //authority
			OmitHost: parsed.Host == "" && parsed.User == nil,
		}
		baseDir = base.String()
	default:
		baseDir = defaultTempDir
	}

	// 2. Subdirectory: echo the target's own path so artifacts stay
	// discoverable per target.
	var subdir string
	if target != "" {
		if strings.HasPrefix(target, defaultTempDir+"/") {
			// strip the /tmp prefix so staging into /tmp itself does not
			// nest a second tmp segment
			subdir = target[len(defaultTempDir):]
		} else {
			// local-path component only, so a scheme marker never lands
			// mid-path
			parsed, err := url.Parse(target)
			if err != nil {
				return "", fmt.Errorf("parse target path %q: %w", target, err)
			}
			subdir = parsed.Path
		}
		subdir = strings.TrimLeft(subdir, "/") + "-"
	}

	leaf := subdir + addon
	if includeUser {
		u, err := currentUser()
		if err != nil {
			return "", fmt.Errorf("look up current user: %w", err)
		}
		leaf = path.Join(u.Username, leaf)
	}

	return joinBase(baseDir, leaf), nil
}

// randomToken returns 32 lowercase hex characters (128 bits of entropy).
func randomToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// joinBase joins leaf onto base without cleaning: path.Join would
// collapse the double slash in a scheme://authority base.
func joinBase(base, leaf string) string {
	if strings.HasSuffix(base, "/") {
		return base + leaf
	}
	return base + "/" + leaf
}
