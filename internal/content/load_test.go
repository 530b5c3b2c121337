package content

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()
	require.Equal(t, "Manav Behl", p.Name)
	require.Equal(t, []string{"Data Analyst", "Electronics Engineer", "IoT Developer", "Problem Solver"}, p.Roles)
	require.Len(t, p.Skills, 6)
	require.Len(t, p.Projects, 3)
	require.Len(t, p.Socials, 3)
	require.True(t, p.Projects[0].HasLink())
	require.False(t, p.Projects[1].HasLink())
	for _, s := range p.Skills {
		require.GreaterOrEqual(t, s.Level, 1)
		require.LessOrEqual(t, s.Level, 5)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().Name, p.Name)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	doc := `
name: Ada Lovelace
roles: ["Analyst"]
projects:
  - title: Engine notes
    link: https://example.com/notes
skills:
  - {name: Maths, level: 5}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", p.Name)
	require.Equal(t, "ada_lovelace", p.Slug())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("name: x\nroles: [a]\nprojects: [{title: p}]\nnickname: y\n"))
	require.ErrorIs(t, err, ErrInvalidProfile)
}

func TestDecodeRejectsEmptyDocument(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidProfile)
}

func TestValidateRules(t *testing.T) {
	base := Profile{Name: "x", Roles: []string{"a"}, Projects: []Project{{Title: "p"}}}
	require.NoError(t, Validate(base))

	noRoles := base
	noRoles.Roles = nil
	require.ErrorIs(t, Validate(noRoles), ErrNoRoles)

	emptyRole := base
	emptyRole.Roles = []string{""}
	require.NoError(t, Validate(emptyRole), "empty phrases are allowed")

	badSkill := base
	badSkill.Skills = []Skill{{Name: "Go", Level: 7}}
	require.ErrorIs(t, Validate(badSkill), ErrInvalidProfile)

	noProjects := base
	noProjects.Projects = []Project{}
	require.ErrorIs(t, Validate(noProjects), ErrInvalidProfile)

	badLink := base
	badLink.Socials = []Social{{Label: "Site", Href: "example.com"}}
	require.ErrorIs(t, Validate(badLink), ErrInvalidProfile)
}

func TestEncodeDecodeDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))
	require.Contains(t, buf.String(), "name: Manav Behl")

	p, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, Default(), p)
}

func TestSlug(t *testing.T) {
	require.Equal(t, "manav_behl", Profile{Name: "  Manav  Behl "}.Slug())
	require.Equal(t, "o_brien_2", Profile{Name: "O'Brien #2"}.Slug())
	require.Equal(t, "", Profile{Name: "!!!"}.Slug())
}
