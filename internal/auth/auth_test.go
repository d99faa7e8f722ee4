package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvToken, "")
	return home
}

func TestGetToken_None(t *testing.T) {
	isolate(t)
	ti, err := GetToken()
	require.NoError(t, err)
	assert.Nil(t, ti)
	assert.Equal(t, "", Token())
}

func TestSetGetDelete(t *testing.T) {
	home := isolate(t)

	require.NoError(t, SetToken("  Bearer abc.def  "))
	fi, err := os.Stat(filepath.Join(home, ".todoboard", credFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	ti, err := GetToken()
	require.NoError(t, err)
	require.NotNil(t, ti)
	assert.Equal(t, "abc.def", ti.Token)
	assert.Equal(t, SourceFile, ti.Source)

	require.NoError(t, DeleteToken())
	require.NoError(t, DeleteToken())
	assert.Equal(t, "", Token())
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, SetToken("from-file"))
	t.Setenv(EnvToken, "bearer from-env")

	ti, err := GetToken()
	require.NoError(t, err)
	assert.Equal(t, "from-env", ti.Token)
	assert.Equal(t, SourceEnv, ti.Source)
}

func TestSetToken_Empty(t *testing.T) {
	isolate(t)
	assert.Error(t, SetToken("   "))
}

func TestGetToken_CorruptFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".todoboard")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, credFileName), []byte("{"), 0o600))

	_, err := GetToken()
	assert.ErrorContains(t, err, "parse credentials")
	assert.Equal(t, "", Token())
}
