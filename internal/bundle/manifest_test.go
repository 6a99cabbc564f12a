package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/stylec"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "button.style.yaml", `
layer: components
container:
  name: card
  type: size
styles:
  button:
    padding: 1rem
    opacity: 0.8
    width: 120
    "&:hover":
      opacity: 1
`)

	m, err := loadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "button", m.Name)
	assert.Equal(t, stylec.LayerComponents, m.Config.Layer)
	require.NotNil(t, m.Config.Container)
	assert.Equal(t, "card", m.Config.Container.Name)
	assert.Equal(t, "size", m.Config.Container.Type)

	require.Len(t, m.Config.Styles, 1)
	assert.Equal(t, "button", m.Config.Styles[0].Key)

	obj, ok := m.Config.Styles[0].Value.(stylec.StyleObject)
	require.True(t, ok)

	// YAML document order survives parsing.
	keys := make([]string, 0, len(obj))
	for _, e := range obj {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"padding", "opacity", "width", "&:hover"}, keys)

	// Scalar types survive too, so unit inference applies downstream.
	padding, _ := obj.Get("padding")
	assert.Equal(t, "1rem", padding)
	opacity, _ := obj.Get("opacity")
	assert.Equal(t, 0.8, opacity)
	width, _ := obj.Get("width")
	assert.Equal(t, 120, width)
}

func TestLoadManifest_NameOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "btn.style.yaml", `
name: primary-button
layer: components
styles:
  button:
    color: red
`)

	m, err := loadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "primary-button", m.Name)
}

func TestLoadManifest_AtRuleGroups(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "alert.style.yaml", `
layer: components
styles:
  alert:
    padding: 1rem
    "@media":
      mobile:
        padding: 0.5rem
`)

	m, err := loadManifest(path)
	require.NoError(t, err)

	out, err := stylec.Compile(m.Config)
	require.NoError(t, err)
	assert.Contains(t, out.CSS, "@media (max-width: 640px)")
	assert.Contains(t, out.CSS, "padding: 0.5rem;")
}

func TestLoadManifest_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "broken.style.yaml", "styles: [\n")

	_, err := loadManifest(path)
	assert.Error(t, err)
}

func TestLoadManifest_StylesNotAMapping(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "broken.style.yaml", `
layer: components
styles:
  - padding
`)

	_, err := loadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestManifestStem(t *testing.T) {
	assert.Equal(t, "button", manifestStem("styles/button.style.yaml"))
	assert.Equal(t, "card", manifestStem("card.yaml"))
	assert.Equal(t, "nav", manifestStem("deep/nested/nav.style.yml"))
}
