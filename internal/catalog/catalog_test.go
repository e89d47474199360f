package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symbols.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `SYMBOL,NAME OF COMPANY
RELIANCE,Reliance Industries Limited
TCS,Tata Consultancy Services Limited
tcs,duplicate lower case
INFY,Infosys Limited
,missing symbol
ONLYONECOLUMN
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	entries := c.Entries()
	assert.Equal(t, "INFY", entries[0].Symbol)
	assert.Equal(t, "RELIANCE", entries[1].Symbol)
	assert.Equal(t, "TCS", entries[2].Symbol)
	assert.Equal(t, "Tata Consultancy Services Limited", c.Lookup("TCS"))
}

func TestLookup_StripsExchangeSuffix(t *testing.T) {
	path := writeCatalog(t, "RELIANCE,Reliance Industries Limited\n")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Reliance Industries Limited", c.Lookup("RELIANCE.NS"))
	assert.Equal(t, "Reliance Industries Limited", c.Lookup("reliance"))
	// Unknown symbols fall back to the input.
	assert.Equal(t, "WIPRO.NS", c.Lookup("WIPRO.NS"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.Zero(t, c.Len())
	assert.Equal(t, "TCS", c.Lookup("TCS"))
}
