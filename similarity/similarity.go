/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package similarity resolves named similarity profiles: the scoring
// algorithms declared in the index settings and the one each field uses.
package similarity

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultField is the fields key used for fields without an entry of their own.
const DefaultField = "__default__"

//go:embed profiles.yaml
var profilesYAML []byte

// Profile is one named similarity profile.
type Profile struct {
	Similarity map[string]any    `yaml:"similarity"`
	Fields     map[string]string `yaml:"fields"`
}

// Hook may add or change similarity settings before they are used. It is
// called with the settings of the loaded profile, never nil.
type Hook func(settings map[string]any)

var (
	loadOnce sync.Once
	profiles map[string]*Profile
	loadErr  error

	hooksMu sync.RWMutex
	hooks   []Hook
)

// ErrUnknownProfile is returned for profile names that are not defined.
var ErrUnknownProfile = errors.New("unknown similarity profile")

func load() {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(profilesYAML, &profiles)
		loadErr = errors.Wrapf(loadErr, "while decoding similarity profiles")
	})
}

// RegisterHook adds a hook run on every Load.
func RegisterHook(h Hook) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, h)
}

// Names returns the defined profile names, sorted.
func Names() []string {
	load()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns a private copy of the named profile with every registered
// hook applied to its settings.
func Load(name string) (*Profile, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	p, ok := profiles[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}

	out := &Profile{
		Similarity: cloneMap(p.Similarity),
		Fields:     make(map[string]string, len(p.Fields)),
	}
	if out.Similarity == nil {
		out.Similarity = make(map[string]any)
	}
	for k, v := range p.Fields {
		out.Fields[k] = v
	}

	hooksMu.RLock()
	defer hooksMu.RUnlock()
	for _, h := range hooks {
		h(out.Similarity)
	}
	glog.V(2).Infof("Loaded similarity profile %s with %d settings", name, len(out.Similarity))
	return out, nil
}

// Field returns the similarity of field, or of its analyzer sub-field when
// analyzer is not empty.
func (p *Profile) Field(field, analyzer string) (string, error) {
	sim, ok := p.Fields[field]
	if !ok {
		sim, ok = p.Fields[DefaultField]
	}
	if analyzer != "" {
		if sub, found := p.Fields[field+"."+analyzer]; found {
			sim, ok = sub, true
		}
	}
	if !ok || sim == "" {
		return "", errors.Errorf("invalid similarity profile, unable to infer the similarity for %s", field)
	}
	return sim, nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
