package hdfs

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdfskit/hdfskit/config"
)

var suffixRe = regexp.MustCompile(`^luigitemp-[0-9a-f]{32}$`)

// assertStaged checks that got is wantPrefix followed by exactly one
// random suffix token.
func assertStaged(t *testing.T, got, wantPrefix string) {
	t.Helper()
	require.True(t, strings.HasPrefix(got, wantPrefix), "got %q, want prefix %q", got, wantPrefix)
	assert.Regexp(t, suffixRe, "luigitemp-"+strings.TrimPrefix(got, wantPrefix))
}

func TestTmpPathSuccessiveCallsDiffer(t *testing.T) {
	pinUser(t, "alice", nil)
	cfg := config.Default()

	first, err := TmpPath(cfg, "hdfs://nn:8020/a/b/c", true)
	require.NoError(t, err)
	second, err := TmpPath(cfg, "hdfs://nn:8020/a/b/c", true)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTmpPathMirrorsTargetCluster(t *testing.T) {
	pinUser(t, "alice", nil)

	got, err := TmpPath(config.Default(), "hdfs://nn:8020/a/b/c", true)
	require.NoError(t, err)

	assertStaged(t, got, "hdfs://nn:8020/tmp/alice/a/b/c-luigitemp-")
}

func TestTmpPathBarePathTarget(t *testing.T) {
	got, err := TmpPath(config.Default(), "/data/part-0000", false)
	require.NoError(t, err)

	assertStaged(t, got, "/tmp/data/part-0000-luigitemp-")
}

func TestTmpPathNoDoubledTmpSegment(t *testing.T) {
	got, err := TmpPath(config.Default(), "/tmp/foo", false)
	require.NoError(t, err)

	// The /tmp prefix is stripped, so the subdirectory is foo-, not tmp/foo-
	assertStaged(t, got, "/tmp/foo-luigitemp-")
}

func TestTmpPathTempRootTargets(t *testing.T) {
	// The temp root itself never yields a /tmp/tmp/ directory segment
	got, err := TmpPath(config.Default(), "/tmp", false)
	require.NoError(t, err)
	assertStaged(t, got, "/tmp/tmp-luigitemp-")

	got, err = TmpPath(config.Default(), "/tmp/", false)
	require.NoError(t, err)
	assertStaged(t, got, "/tmp/-luigitemp-")
}

func TestTmpPathNoTarget(t *testing.T) {
	got, err := TmpPath(config.Default(), "", false)
	require.NoError(t, err)

	// Nothing but the base directory and the random suffix
	assert.Regexp(t, `^/tmp/luigitemp-[0-9a-f]{32}$`, got)
}

func TestTmpPathNoTargetWithUser(t *testing.T) {
	pinUser(t, "alice", nil)

	got, err := TmpPath(config.Default(), "", true)
	require.NoError(t, err)

	assert.Regexp(t, `^/tmp/alice/luigitemp-[0-9a-f]{32}$`, got)
}

func TestTmpPathConfiguredOverrideWins(t *testing.T) {
	pinUser(t, "alice", nil)
	cfg := config.Default()
	cfg.HDFS.TmpDir = "/custom"

	// Scheme and authority of the target are ignored for the base
	got, err := TmpPath(cfg, "hdfs://nn:8020/a/b/c", true)
	require.NoError(t, err)
	assertStaged(t, got, "/custom/alice/a/b/c-luigitemp-")

	got, err = TmpPath(cfg, "", false)
	require.NoError(t, err)
	assertStaged(t, got, "/custom/luigitemp-")
}

func TestTmpPathOverrideKeepsLiteralTmpCheck(t *testing.T) {
	cfg := config.Default()
	cfg.HDFS.TmpDir = "/custom"

	// The doubled-prefix protection compares against the literal /tmp/,
	// not the configured base, so /custom/foo is echoed in full
	got, err := TmpPath(cfg, "/custom/foo", false)
	require.NoError(t, err)
	assertStaged(t, got, "/custom/custom/foo-luigitemp-")

	// ...while a /tmp/-prefixed target is still stripped
	got, err = TmpPath(cfg, "/tmp/foo", false)
	require.NoError(t, err)
	assertStaged(t, got, "/custom/foo-luigitemp-")
}

func TestTmpPathDropsQueryAndFragment(t *testing.T) {
	got, err := TmpPath(config.Default(), "hdfs://nn:8020/a/b?replica=3#frag", false)
	require.NoError(t, err)

	assertStaged(t, got, "hdfs://nn:8020/tmp/a/b-luigitemp-")
}

func TestTmpPathSchemedTargetWithoutAuthority(t *testing.T) {
	// Only the local-path component is echoed, so no scheme marker ends
	// up mid-path
	got, err := TmpPath(config.Default(), "hdfs:/dir/file", false)
	require.NoError(t, err)

	assertStaged(t, got, "hdfs:/tmp/dir/file-luigitemp-")
}

func TestTmpPathSiblingsShareBase(t *testing.T) {
	pinUser(t, "alice", nil)
	cfg := config.Default()

	for _, target := range []string{"hdfs://nn:8020/a", "hdfs://nn:8020/b/c", "hdfs://nn:8020/"} {
		got, err := TmpPath(cfg, target, true)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "hdfs://nn:8020/tmp/"),
			"temp path %q for %q must live under the shared base", got, target)
	}
}

func TestTmpPathMalformedTarget(t *testing.T) {
	_, err := TmpPath(config.Default(), "://no-scheme", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse target path")

	// The subdirectory branch still parses when the base is overridden
	cfg := config.Default()
	cfg.HDFS.TmpDir = "/custom"
	_, err = TmpPath(cfg, "://no-scheme", false)
	require.Error(t, err)
}

func TestTmpPathUserLookupErrorPropagates(t *testing.T) {
	lookupErr := errors.New("no passwd entry")
	pinUser(t, "", lookupErr)

	_, err := TmpPath(config.Default(), "/data/x", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)

	// Lookup only happens when the user segment is requested
	_, err = TmpPath(config.Default(), "/data/x", false)
	assert.NoError(t, err)
}

func TestRandomTokenFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		token := randomToken()
		assert.Regexp(t, `^[0-9a-f]{32}$`, token)
		assert.False(t, seen[token], "token %q repeated", token)
		seen[token] = true
	}
}
