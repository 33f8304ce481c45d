package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func touchImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	a := touchImage(t, dir, "a.png")
	b := touchImage(t, dir, "b.jpg")

	path := writeManifest(t, `
name: Adipocyte run 3
culture: HepG2
days:
  - day: 0
    images: ["`+a+`", "`+b+`"]
  - day: 2.5
    folder: "`+dir+`"
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Adipocyte run 3", m.Name)
	assert.Equal(t, "HepG2", m.Culture)
	require.Len(t, m.Days, 2)
	assert.Equal(t, 2.5, m.Days[1].Day)
}

func TestCultureDefaultsWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	a := touchImage(t, dir, "a.png")

	path := writeManifest(t, `
name: Run
days:
  - day: 0
    images: ["`+a+`"]
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Unnamed culture", m.Culture)
}

func TestValidateRejections(t *testing.T) {
	dir := t.TempDir()
	a := touchImage(t, dir, "a.png")

	cases := []struct {
		name    string
		content string
	}{
		{"missing name", `
days:
  - day: 0
    images: ["` + a + `"]
`},
		{"no days", `
name: Run
days: []
`},
		{"duplicate day", `
name: Run
days:
  - day: 1
    images: ["` + a + `"]
  - day: 1
    images: ["` + a + `"]
`},
		{"day without sources", `
name: Run
days:
  - day: 0
`},
		{"images and folder together", `
name: Run
days:
  - day: 0
    images: ["` + a + `"]
    folder: "` + dir + `"
`},
		{"nonexistent image", `
name: Run
days:
  - day: 0
    images: ["` + filepath.Join(dir, "missing.png") + `"]
`},
		{"non-image file", `
name: Run
days:
  - day: 0
    images: ["` + touchImage(t, dir, "notes.txt") + `"]
`},
		{"nonexistent folder", `
name: Run
days:
  - day: 0
    folder: "` + filepath.Join(dir, "nope") + `"
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestResolveFolderSortsImages(t *testing.T) {
	dir := t.TempDir()
	touchImage(t, dir, "b.png")
	touchImage(t, dir, "a.png")
	touchImage(t, dir, "notes.txt")

	entry := DayEntry{Day: 0, Folder: dir}
	paths, err := entry.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
	}, paths)
}

func TestResolveEmptyFolder(t *testing.T) {
	entry := DayEntry{Day: 0, Folder: t.TempDir()}
	_, err := entry.Resolve()
	assert.Error(t, err)
}

func TestResolveExplicitImagesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	b := touchImage(t, dir, "b.png")
	a := touchImage(t, dir, "a.png")

	entry := DayEntry{Day: 0, Images: []string{b, a}}
	paths, err := entry.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, paths)
}
