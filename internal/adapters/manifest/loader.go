// Package manifest loads a program universe from a YAML manifest.
package manifest

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.UniverseLoader            = (*Loader)(nil)
	_ ports.Universe                  = (*Universe)(nil)
	_ ports.ReloadablePackageProvider = (*Universe)(nil)
)

// Loader implements ports.UniverseLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the manifest at path.
func (l *Loader) Load(path string) (ports.Universe, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	u, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	l.Logger.Info(fmt.Sprintf("loaded %d known and %d classpath types from %s", len(u.known), len(u.classpath), path))
	return u, nil
}

// Parse builds a Universe from manifest bytes.
func Parse(data []byte) (*Universe, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	u := &Universe{
		byName:     make(map[string]*domain.Type, len(file.Types)),
		resolvable: make(map[string]*domain.Type, len(file.Types)+len(file.Classpath)),
		reloadable: file.Reloadable,
		digest:     xxhash.Sum64(data),
	}

	for _, dto := range file.Types {
		t, err := u.add(dto)
		if err != nil {
			return nil, err
		}
		u.known = append(u.known, t)
		u.byName[dto.Name] = t
	}
	for _, dto := range file.Classpath {
		if _, err := u.add(dto); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (u *Universe) add(dto TypeDTO) (*domain.Type, error) {
	if dto.Name == "" {
		return nil, zerr.New("manifest type without a name")
	}
	if _, dup := u.resolvable[dto.Name]; dup {
		return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateType, "failed to add type"), "type", dto.Name)
	}
	if err := dto.checkMembers(); err != nil {
		return nil, err
	}
	t := domain.NewType(dto.toSpec())
	u.resolvable[dto.Name] = t
	u.classpath = append(u.classpath, t)
	return t, nil
}
