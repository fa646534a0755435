package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/locate"
)

const vanillaPackage = `<?xml version="1.0" encoding="utf-8"?>
<contentpackage name="Vanilla" gameversion="1.2.8.0" corepackage="true">
  <Item file="Content/Items/Tools/tools.xml" />
  <Item file="Content\Items\Weapons\weapons.xml" />
  <Item file="" />
  <Submarine file="Content/Submarines/Azimuth.sub" />
  <Character file="Content/Characters/Human/Human.xml" />
  <Afflictions file="Content/Afflictions.xml" />
  <Structure file="Content/Map/StructurePrefabs.xml" />
  <NPCSets file="Content/NPCSets/Merchants.xml" />
</contentpackage>`

const toolsFile = `<Items>
  <Item identifier="wrench"><Sprite texture="tools.png" sourcerect="0,0,32,32"/></Item>
  <Item identifier="psychosisartifact_event"><Sprite texture="tools.png" sourcerect="0,0,32,32"/></Item>
  <Item identifier="crowbar"><Sprite texture="tools.png" sourcerect="32,0,32,32"/></Item>
</Items>`

// installation writes a fake game installation and returns a locator over it.
func installation(t *testing.T, files map[string]string) *locate.Locator {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return locate.NewLocator(root, 64, locate.DefaultCacheTTL)
}

func TestParsePackage(t *testing.T) {
	pkg, err := ParsePackage(strings.NewReader(vanillaPackage))
	require.NoError(t, err)

	assert.Equal(t, &domain.ContentPackage{
		Name:        "Vanilla",
		Version:     "1-2-8-0",
		Items:       []string{"Content/Items/Tools/tools.xml", "Content/Items/Weapons/weapons.xml"},
		Submarines:  []string{"Content/Submarines/Azimuth.sub"},
		Characters:  []string{"Content/Characters/Human/Human.xml"},
		Afflictions: []string{"Content/Afflictions.xml"},
		Structures:  []string{"Content/Map/StructurePrefabs.xml"},
		NPCSets:     []string{"Content/NPCSets/Merchants.xml"},
	}, pkg)
}

func TestParsePackage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"missing name", `<contentpackage gameversion="1.0"/>`},
		{"missing version", `<contentpackage name="Mod"/>`},
		{"malformed version", `<contentpackage name="Mod" gameversion="latest"/>`},
		{"wrong root", `<Items/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := ParsePackage(strings.NewReader(tt.xml))
			assert.Nil(t, pkg)
			assert.True(t, errors.Is(err, domain.ErrInvalidContentPackage), "got %v", err)
		})
	}

	_, err := ParsePackage(strings.NewReader(`<contentpackage`))
	assert.Error(t, err)
}

func TestReadGameVersion(t *testing.T) {
	loc := installation(t, map[string]string{VanillaPackagePath: vanillaPackage})

	v, err := ReadGameVersion(loc)
	require.NoError(t, err)
	assert.Equal(t, "1-2-8-0", v)

	_, err = ReadGameVersion(installation(t, nil))
	assert.Error(t, err)
}

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "0-20-0-0", NormalizeVersion(" 0.20.0.0 "))
	assert.Equal(t, "1", NormalizeVersion("1"))
	assert.Equal(t, "", NormalizeVersion(""))
}

func TestLoadFile(t *testing.T) {
	loc := installation(t, map[string]string{
		"Content/Items/Tools/tools.xml":    toolsFile,
		"Content/Items/Tools/assembly.xml": `<ItemAssembly name="x"><Item identifier="a"/></ItemAssembly>`,
		"Content/Items/Tools/broken.xml":   `<Items><Item>`,
	})
	ctx := context.Background()

	t.Run("assigns origin metadata", func(t *testing.T) {
		recs, err := NewLoader(loc, Options{}).LoadFile(ctx, `Content\Items\Tools\tools.xml`)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		for i, r := range recs {
			assert.Equal(t, "Content/Items/Tools", r.Dir)
			assert.Equal(t, "tools.xml", r.File)
			assert.Equal(t, i, r.Ordinal)
		}
	})

	t.Run("skips event items", func(t *testing.T) {
		recs, err := NewLoader(loc, Options{SkipEventItems: true}).LoadFile(ctx, "Content/Items/Tools/tools.xml")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "wrench", recs[0].String(AttrIdentifier, ""))
		assert.Equal(t, "crowbar", recs[1].String(AttrIdentifier, ""))
	})

	t.Run("ignores non item roots", func(t *testing.T) {
		recs, err := NewLoader(loc, Options{}).LoadFile(ctx, "Content/Items/Tools/assembly.xml")
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("reports broken files", func(t *testing.T) {
		_, err := NewLoader(loc, Options{}).LoadFile(ctx, "Content/Items/Tools/broken.xml")
		assert.ErrorContains(t, err, "failed to parse item file")
	})
}

func TestLoadRecords(t *testing.T) {
	loc := installation(t, map[string]string{
		"Content/Items/Tools/tools.xml":     toolsFile,
		"Content/Items/Weapons/weapons.xml": `<Items><Item identifier="harpoongun"/></Items>`,
	})
	l := NewLoader(loc, Options{})
	ctx := context.Background()

	recs, err := l.LoadRecords(ctx, []string{
		"Content/Items/Tools/tools.xml",
		"Content/Items/Missing/missing.xml",
		"content/items/weapons/WEAPONS.xml",
	})
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "harpoongun", recs[3].String(AttrIdentifier, ""))
	assert.Equal(t, "content/items/weapons", recs[3].Dir)

	_, err = l.LoadRecords(ctx, []string{"Content/Items/Missing/missing.xml"})
	assert.Error(t, err)

	none, err := l.LoadRecords(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemFiles(t *testing.T) {
	loc := installation(t, map[string]string{
		"Content/Items/Tools/tools.xml":     toolsFile,
		"Content/Items/Weapons/weapons.xml": `<Items/>`,
		"Content/Items/Weapons/weapons.png": "png",
	})
	l := NewLoader(loc, Options{})
	ctx := context.Background()

	listed, err := l.ItemFiles(ctx, &domain.ContentPackage{Items: []string{"Content/Items/Tools/tools.xml"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Content/Items/Tools/tools.xml"}, listed)

	scanned, err := l.ItemFiles(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Content/Items/Tools/tools.xml", "Content/Items/Weapons/weapons.xml"}, scanned)
}
