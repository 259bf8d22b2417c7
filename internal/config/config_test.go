package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/movement"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, crucible.DefaultRegimes(), c.CrucibleRegimes())
}

func TestParse(t *testing.T) {
	c, err := Parse(`
[[regime]]
name = "wide"
min_run = 2
max_run = 6

[[regime]]
name = "exact"
min_run = 3
max_run = 3
`)
	require.NoError(t, err)
	assert.Equal(t, []crucible.Regime{
		{Name: "wide", Constraints: movement.Constraints{MinRun: 2, MaxRun: 6}},
		{Name: "exact", Constraints: movement.Constraints{MinRun: 3, MaxRun: 3}},
	}, c.CrucibleRegimes())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", ``, ErrNoRegimes},
		{"Unnamed", "[[regime]]\nmin_run = 1\nmax_run = 3\n", ErrRegimeName},
		{"Duplicate", "[[regime]]\nname = \"a\"\nmin_run = 1\nmax_run = 3\n[[regime]]\nname = \"a\"\nmin_run = 1\nmax_run = 2\n", ErrRegimeName},
		{"Inverted", "[[regime]]\nname = \"a\"\nmin_run = 4\nmax_run = 3\n", movement.ErrRunRange},
		{"ZeroMin", "[[regime]]\nname = \"a\"\nmax_run = 3\n", movement.ErrBadMinRun},
		{"Unknown", "[[regime]]\nname = \"a\"\nmin_run = 1\nmax_run = 3\nmax = 9\n", ErrUnknownKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Parse("[[regime]\n")
	assert.Error(t, err, "malformed TOML")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regimes.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[regime]]\nname = \"only\"\nmin_run = 1\nmax_run = 1\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Regimes, 1)
	assert.Equal(t, "only", c.Regimes[0].Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[regime]]\nname = \"x\"\n"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, movement.ErrBadMinRun)
	assert.Contains(t, err.Error(), bad)
}

func TestLoadOrDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	c, src, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "defaults", src)
	assert.Equal(t, Default(), c)

	require.NoError(t, os.WriteFile(FileName, []byte("[[regime]]\nname = \"local\"\nmin_run = 2\nmax_run = 5\n"), 0o644))
	c, src, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, FileName, src)
	assert.Equal(t, "local", c.Regimes[0].Name)
}
