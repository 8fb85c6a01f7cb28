package cottage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultZoneTable(t *testing.T) {
	table := DefaultZoneTable()

	assert.Equal(t, 9, table.Len())
	assert.Equal(t, 6, table.Filter(ZoneWall).Len())
	assert.Equal(t, 1, table.Filter(ZoneStairs).Len())
	assert.Equal(t, 1, table.Filter(ZoneInterior).Len())
	assert.Equal(t, 1, table.Filter(ZonePickup).Len())
	assert.Equal(t, 2, table.Filter(ZoneStairs, ZoneInterior).Len())
}

func TestZoneTable_ZonesIsACopy(t *testing.T) {
	table := DefaultZoneTable()
	zones := table.Zones()
	zones[0].Rect = Rectangle{}

	assert.NotEqual(t, Rectangle{}, table.Zones()[0].Rect)
}

func TestZoneTable_ZoneAt(t *testing.T) {
	table := DefaultZoneTable()

	z, ok := table.ZoneAt(Point2D{-1.6, 4.3})
	require.True(t, ok)
	assert.Equal(t, "stairs-hall", z.Name)
	assert.Equal(t, ZoneStairs, z.Tag)

	_, ok = table.ZoneAt(Point2D{0, 0})
	assert.False(t, ok)
}

func TestZoneTable_AnyContains(t *testing.T) {
	table := DefaultZoneTable()
	bow := table.Filter(ZonePickup).Zones()[0].Rect.Centroid()

	assert.True(t, table.AnyContains(ZonePickup, bow))
	assert.True(t, table.AnyContains(ZoneInterior, bow))
	assert.False(t, table.AnyContains(ZoneWall, bow))
	assert.False(t, table.AnyContains(ZoneStairs, bow))

	var empty *ZoneTable
	assert.False(t, empty.AnyContains(ZoneWall, bow))
}

func TestParseZoneTable(t *testing.T) {
	data := []byte(`
zones:
  - name: pillar
    tag: wall
    a: [0, 0]
    b: [1, 0]
    d: [0, 1]
  - tag: pickup
    a: [5, 5]
    b: [6, 5]
    d: [5, 6]
`)
	table, err := ParseZoneTable(data)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	zones := table.Zones()
	assert.Equal(t, "pillar", zones[0].Name)
	assert.Equal(t, ZoneWall, zones[0].Tag)
	assert.Equal(t, unitSquare, zones[0].Rect)
	assert.Equal(t, "pickup-1", zones[1].Name)
	assert.True(t, PointInAnyZone(table.Filter(ZonePickup), Point2D{5.5, 5.5}))
}

func TestParseZoneTable_UnknownTag(t *testing.T) {
	_, err := ParseZoneTable([]byte("zones:\n  - tag: lava\n    a: [0, 0]\n    b: [1, 0]\n    d: [0, 1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown zone tag "lava"`)
}

func TestParseZoneTable_MissingTag(t *testing.T) {
	_, err := ParseZoneTable([]byte("zones:\n  - name: shed\n    a: [0, 0]\n    b: [1, 0]\n    d: [0, 1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `zone 0 ("shed") has no tag`)
}

func TestLoadZoneTable_WrittenTable(t *testing.T) {
	data, err := MarshalZoneTable(DefaultZoneTable())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadZoneTable(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultZoneTable().Zones(), loaded.Zones())
}

func TestLoadZoneTable_MissingFile(t *testing.T) {
	_, err := LoadZoneTable(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
