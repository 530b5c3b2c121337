package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=1,max=5"`
	Href  string `yaml:"href" validate:"required,link"`
}

func TestStructReportsYAMLNames(t *testing.T) {
	err := Struct(sample{Level: 9, Href: "#"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "'name'")
	require.Contains(t, err.Error(), "'level'")
}

func TestLinkTag(t *testing.T) {
	for _, ok := range []string{"#", "https://github.com/x/y", "http://example.com", "mailto:me@example.com"} {
		require.NoError(t, Var(ok, "link"), ok)
	}
	for _, bad := range []string{"", "github.com/x", "mailto:", "ftp://host/file"} {
		require.Error(t, Var(bad, "link"), bad)
	}
}
