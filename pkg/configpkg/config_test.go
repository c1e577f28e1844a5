package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	env := "DATA_FILE=ledger.json\nGO_ENV=development\nHISTORY_PAGE_SIZE=7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o644))

	c, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "ledger.json", c.DataFile)
	require.Equal(t, "development", c.Environment)
	require.Equal(t, 7, c.HistoryPageSize)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	viper.Reset()

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "cuentas.json", c.DataFile)
	require.Equal(t, "production", c.Environment)
	require.Equal(t, 5, c.HistoryPageSize)
}
