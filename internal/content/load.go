package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/folio/internal/validate"
)

var (
	// ErrInvalidProfile wraps every decoding or validation failure.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrNoRoles is returned when the typing animation would have nothing to type.
	ErrNoRoles = errors.New("profile has no roles")
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in profile.
func Default() Profile {
	p, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		// The embedded file is covered by tests; reaching this is a build defect.
		panic(fmt.Sprintf("content: embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from a YAML file. An empty path yields Default.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"path":     path,
		"projects": len(p.Projects),
		"roles":    len(p.Roles),
	}).Debug("loaded profile")
	return p, nil
}

// Decode parses and validates a YAML profile. Unknown keys are rejected so
// that typos do not silently drop content.
func Decode(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, fmt.Errorf("%w: document is empty", ErrInvalidProfile)
		}
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks struct constraints on p.
func Validate(p Profile) error {
	if len(p.Roles) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNoRoles)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// Encode writes p as YAML.
func Encode(w io.Writer, p Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
