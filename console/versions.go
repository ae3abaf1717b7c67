package console

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/pitabwire/fabconsole/model"
)

// FabricVersion is one deployable version from getFabVersions.
type FabricVersion struct {
	Version string         `json:"version"`
	Default bool           `json:"default"`
	Image   map[string]any `json:"image"`
}

// FabricVersions is the getFabVersions result: component type ("ca",
// "peer", "orderer") to version string to details.
type FabricVersions struct {
	Versions map[string]map[string]FabricVersion `json:"versions"`
}

// ParseFabricVersions decodes a getFabVersions response.
func ParseFabricVersions(resp *model.ResponseEnvelope) (*FabricVersions, error) {
	var fv FabricVersions
	if err := resp.Decode(&fv); err != nil {
		return nil, fmt.Errorf("console: fabric versions: %w", err)
	}
	for _, byVersion := range fv.Versions {
		for key, v := range byVersion {
			if v.Version == "" {
				v.Version = key
				byVersion[key] = v
			}
		}
	}
	return &fv, nil
}

// Sorted returns the versions of componentType, newest first. Entries that
// are not semantic versions sort last in string order.
func (fv *FabricVersions) Sorted(componentType string) []FabricVersion {
	byVersion := fv.Versions[componentType]
	out := make([]FabricVersion, 0, len(byVersion))
	for _, v := range byVersion {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, erri := semver.NewVersion(out[i].Version)
		vj, errj := semver.NewVersion(out[j].Version)
		switch {
		case erri == nil && errj == nil:
			if !vi.Equal(vj) {
				return vi.GreaterThan(vj)
			}
		case erri == nil:
			return true
		case errj == nil:
			return false
		}
		return out[i].Version > out[j].Version
	})
	return out
}

// Latest returns the newest version of componentType.
func (fv *FabricVersions) Latest(componentType string) (FabricVersion, bool) {
	sorted := fv.Sorted(componentType)
	if len(sorted) == 0 {
		return FabricVersion{}, false
	}
	return sorted[0], true
}

// Default returns the version the console marks as default for
// componentType, falling back to the newest one.
func (fv *FabricVersions) Default(componentType string) (FabricVersion, bool) {
	sorted := fv.Sorted(componentType)
	for _, v := range sorted {
		if v.Default {
			return v, true
		}
	}
	if len(sorted) == 0 {
		return FabricVersion{}, false
	}
	return sorted[0], true
}

// Matching returns the newest version of componentType that satisfies the
// semver constraint, e.g. "~2.2" or ">= 1.5, < 2".
func (fv *FabricVersions) Matching(componentType, constraint string) (FabricVersion, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return FabricVersion{}, fmt.Errorf("console: version constraint %q: %w", constraint, err)
	}
	for _, v := range fv.Sorted(componentType) {
		sv, err := semver.NewVersion(v.Version)
		if err != nil {
			continue
		}
		// Console builds carry a "-N" suffix that semver treats as a
		// pre-release; constraints are matched on the release part.
		release, _ := sv.SetPrerelease("")
		if c.Check(&release) {
			return v, nil
		}
	}
	return FabricVersion{}, fmt.Errorf("console: no %s version matches %q", componentType, constraint)
}

// LatestFabricVersion fetches the deployable versions and returns the
// newest one for componentType.
func (s *Service) LatestFabricVersion(ctx context.Context, componentType string) (FabricVersion, error) {
	fv, err := s.fabricVersions(ctx)
	if err != nil {
		return FabricVersion{}, err
	}
	v, ok := fv.Latest(componentType)
	if !ok {
		return FabricVersion{}, fmt.Errorf("console: no versions for %q", componentType)
	}
	return v, nil
}

// DefaultFabricVersion fetches the deployable versions and returns the
// console default for componentType.
func (s *Service) DefaultFabricVersion(ctx context.Context, componentType string) (FabricVersion, error) {
	fv, err := s.fabricVersions(ctx)
	if err != nil {
		return FabricVersion{}, err
	}
	v, ok := fv.Default(componentType)
	if !ok {
		return FabricVersion{}, fmt.Errorf("console: no versions for %q", componentType)
	}
	return v, nil
}

func (s *Service) fabricVersions(ctx context.Context) (*FabricVersions, error) {
	resp, err := s.GetFabVersions(ctx, &GetFabVersionsOptions{Cache: model.CacheSkip})
	if err != nil {
		return nil, err
	}
	return ParseFabricVersions(resp)
}
