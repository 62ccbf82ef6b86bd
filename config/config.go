/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config holds the settings the analysis builders read: the ICU
// switches, the similarity profile and the suggester toggles. Settings come
// from a config file, environment variables and flags through viper.
package config

import (
	"sort"
	"strings"

	"github.com/dgraph-io/ristretto/v2/z"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings is a resolved configuration. It is read-only once built.
type Settings struct {
	icuTokenizer     string
	icuFolding       string
	unicodeSetFilter *string
	similarity       string
	subphrases       bool
	reverseSuggest   bool
	bannedPlugins    []string
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	s, err := New(nil)
	if err != nil {
		// The defaults are constants; failing here is a programming error.
		panic(err)
	}
	return s
}

// New builds settings from raw values keyed by the Key* constants. Missing
// keys take their default value.
func New(values map[string]any) (*Settings, error) {
	s := &Settings{
		icuTokenizer: SwitchDefault,
		icuFolding:   SwitchDefault,
		similarity:   DefaultSimilarity,
		subphrases:   false,
	}
	for key, v := range values {
		if err := s.set(key, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Settings) set(key string, v any) error {
	var err error
	switch key {
	case KeyIcuTokenizer:
		s.icuTokenizer, err = cast.ToStringE(v)
	case KeyIcuFolding:
		s.icuFolding, err = foldingSwitch(v)
	case KeyUnicodeSetFilter:
		var filter string
		if v != nil {
			filter, err = cast.ToStringE(v)
			s.unicodeSetFilter = &filter
		}
	case KeySimilarity:
		s.similarity, err = cast.ToStringE(v)
	case KeySubphrases:
		s.subphrases, err = cast.ToBoolE(v)
	case KeyReverseSuggest:
		s.reverseSuggest, err = cast.ToBoolE(v)
	case KeyBannedPlugins:
		s.bannedPlugins, err = cast.ToStringSliceE(v)
	default:
		return errors.Errorf("unknown setting %q", key)
	}
	return errors.Wrapf(err, "while reading setting %q", key)
}

// foldingSwitch maps the historical boolean form of the folding setting to
// "yes" and "no".
func foldingSwitch(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return SwitchYes, nil
		}
		return SwitchNo, nil
	case string:
		switch val {
		case "true":
			return SwitchYes, nil
		case "false":
			return SwitchNo, nil
		}
		return val, nil
	}
	return cast.ToStringE(v)
}

// FromViper reads the settings of a command. The ICU options come from the
// "icu" super flag; single keys set in the config file or the environment
// override it.
func FromViper(conf *viper.Viper) (*Settings, error) {
	values := make(map[string]any)

	icu := z.NewSuperFlag(conf.GetString(FlagIcu)).MergeAndCheckDefault(IcuDefaults)
	values[KeyIcuTokenizer] = icu.GetString("tokenizer")
	values[KeyIcuFolding] = icu.GetString("folding")
	if filter := icu.GetString("unicode-set-filter"); filter != "" {
		values[KeyUnicodeSetFilter] = filter
	}

	for _, key := range []string{KeyIcuTokenizer, KeyIcuFolding, KeyUnicodeSetFilter,
		KeySimilarity, KeySubphrases, KeyReverseSuggest, KeyBannedPlugins} {
		if conf.IsSet(key) {
			values[key] = conf.Get(key)
		}
	}
	if glog.V(2) {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		glog.Infof("Settings read from configuration: %s", strings.Join(keys, ", "))
	}
	return New(values)
}

func (s *Settings) UseIcuTokenizer() string { return s.icuTokenizer }

func (s *Settings) UseIcuFolding() string { return s.icuFolding }

// ICUFoldingUnicodeSetFilter returns the configured set filter. The second
// value is false when none is configured, in which case the per-language
// default applies. An empty configured filter disables the per-language one.
func (s *Settings) ICUFoldingUnicodeSetFilter() (string, bool) {
	if s.unicodeSetFilter == nil {
		return "", false
	}
	return *s.unicodeSetFilter, true
}

func (s *Settings) SimilarityProfile() string { return s.similarity }

func (s *Settings) CompletionSuggesterSubphrases() bool { return s.subphrases }

func (s *Settings) ReverseSuggest() bool { return s.reverseSuggest }

// FilterPlugins drops the banned plugins from plugins, keeping the order.
func (s *Settings) FilterPlugins(plugins []string) []string {
	if len(s.bannedPlugins) == 0 {
		return plugins
	}
	banned := make(map[string]struct{}, len(s.bannedPlugins))
	for _, p := range s.bannedPlugins {
		banned[p] = struct{}{}
	}
	out := make([]string, 0, len(plugins))
	for _, p := range plugins {
		if _, ok := banned[p]; ok {
			glog.V(2).Infof("Ignoring banned plugin %s", p)
			continue
		}
		out = append(out, p)
	}
	return out
}
