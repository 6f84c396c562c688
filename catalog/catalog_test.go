// File: catalog/catalog_test.go
package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siegegrid/catalog"
	"github.com/katalvlaran/siegegrid/topology"
)

// TestBuiltin checks the embedded catalog: names sorted, every grid
// parses and extracts to a closed structure.
func TestBuiltin(t *testing.T) {
	c := catalog.Builtin()
	require.Equal(t, []string{"bridge", "ramp", "tower", "wall"}, c.Names())
	require.Equal(t, 4, c.Len())

	for _, name := range c.Names() {
		entry, err := c.Get(name)
		require.NoError(t, err)
		grid, err := entry.Parse()
		require.NoError(t, err, "parse %q", name)
		_, err = topology.Extract(grid)
		require.NoError(t, err, "extract %q", name)
	}
}

// TestGet_Unknown checks the miss path.
func TestGet_Unknown(t *testing.T) {
	_, err := catalog.Builtin().Get("trebuchet")
	require.ErrorIs(t, err, catalog.ErrUnknownTemplate)
}

// TestLoad checks the YAML file round trip including default target
// dimensions.
func TestLoad(t *testing.T) {
	doc := `templates:
  - name: keep
    width: 12
    height: 8
    grid: |
      +--+
      |..|
      o--o
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	entry, err := c.Get("keep")
	require.NoError(t, err)
	require.Equal(t, 12, entry.Width)
	require.Equal(t, 8, entry.Height)

	grid, err := entry.Parse()
	require.NoError(t, err)
	require.Equal(t, 4, grid.Width())
	require.Equal(t, 3, grid.Height())
}

// TestNew_Validation checks name and grid validation.
func TestNew_Validation(t *testing.T) {
	_, err := catalog.New([]catalog.Entry{{Name: "", Grid: "+-+\n|.|\no-o"}})
	require.ErrorIs(t, err, catalog.ErrInvalidEntry)

	_, err = catalog.New([]catalog.Entry{
		{Name: "twin", Grid: "+-+\n|.|\no-o"},
		{Name: "twin", Grid: "+-+\n|.|\no-o"},
	})
	require.ErrorIs(t, err, catalog.ErrDuplicateTemplate)

	_, err = catalog.New([]catalog.Entry{{Name: "bad", Grid: "+#+"}})
	require.ErrorIs(t, err, catalog.ErrInvalidEntry)
}
