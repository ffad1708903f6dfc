package artifact

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/pkg/errors"
)

const buildInfoDir = "build-info"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_store.go . Store
type Store interface {
	Find(name string) (Artifact, error)
}

// DirectoryStore reads artifacts from a Hardhat artifacts directory, where
// each contract lives at <root>/<sourceName>/<ContractName>.json.
type DirectoryStore struct {
	root string
}

func NewDirectoryStore(root string) DirectoryStore {
	return DirectoryStore{root: root}
}

func (s DirectoryStore) Root() string {
	return s.root
}

// Find accepts a bare contract name or a fully qualified one such as
// contracts/Token.sol:Token.
func (s DirectoryStore) Find(name string) (Artifact, error) {
	if _, err := os.Stat(s.root); err != nil {
		return Artifact{}, errors.Wrapf(err, "artifacts directory %s is not readable, have the contracts been compiled?", s.root)
	}

	if sourceName, contractName, ok := splitFullyQualifiedName(name); ok {
		return s.read(filepath.Join(s.root, filepath.FromSlash(sourceName), contractName+".json"), name)
	}

	paths, err := s.candidates(name)
	if err != nil {
		return Artifact{}, err
	}

	switch len(paths) {
	case 0:
		return Artifact{}, errors.Errorf("artifact for contract %q not found in %s", name, s.root)
	case 1:
		return s.read(paths[0], name)
	default:
		var names []string
		for _, path := range paths {
			names = append(names, s.fullyQualifiedNameFor(path))
		}
		return Artifact{}, errors.Errorf("there are multiple artifacts for contract %q, use one of these fully qualified names: %s",
			name, strings.Join(names, ", "))
	}
}

func (s DirectoryStore) candidates(name string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.Join(s.root, "**", name+".json"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s for %s", s.root, name)
	}

	buildInfo := filepath.Join(s.root, buildInfoDir) + string(filepath.Separator)
	var paths []string
	for _, match := range matches {
		if strings.HasPrefix(match, buildInfo) {
			continue
		}
		if info, err := os.Stat(match); err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, match)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s DirectoryStore) read(path, name string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Artifact{}, errors.Errorf("artifact for contract %q not found in %s", name, s.root)
		}
		return Artifact{}, errors.Wrapf(err, "failed to read artifact %s", path)
	}

	artifact, err := Parse(data)
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "failed to parse %s", path)
	}
	return artifact, nil
}

func (s DirectoryStore) fullyQualifiedNameFor(path string) string {
	relative, err := filepath.Rel(s.root, path)
	if err != nil {
		relative = path
	}
	relative = filepath.ToSlash(relative)
	return filepath.ToSlash(filepath.Dir(relative)) + ":" + strings.TrimSuffix(filepath.Base(relative), ".json")
}

func splitFullyQualifiedName(name string) (string, string, bool) {
	index := strings.LastIndex(name, ":")
	if index <= 0 || index == len(name)-1 {
		return "", "", false
	}
	return name[:index], name[index+1:], true
}
