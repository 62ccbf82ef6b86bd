/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package builder generates the analysis settings of a search index for a
// language and the set of plugins installed on the cluster.
package builder

import (
	"sync"

	"github.com/golang/glog"

	"github.com/hypermodeinc/analysiscfg/analysis"
	"github.com/hypermodeinc/analysiscfg/config"
	"github.com/hypermodeinc/analysiscfg/langs"
	"github.com/hypermodeinc/analysiscfg/similarity"
)

// Version of the generated analysis. Bump the major part when the output
// changes in an incompatible way and the minor part for compatible changes;
// indices built with another major version must be rebuilt.
const Version = "0.12"

const (
	// KeywordIgnoreAbove is the number of characters kept in keyword terms.
	KeywordIgnoreAbove = 5000
	// MaxTitleSearch bounds the prefix n-grams of titles.
	MaxTitleSearch = 255
)

// Plugins the builders look for.
const (
	PluginICU       = "analysis-icu"
	PluginExtra     = "extra"
	PluginHomoglyph = "extra-analysis-homoglyph"
)

// Config is what the builders need from the configuration.
type Config interface {
	// UseIcuTokenizer is one of "yes", "no" or "default".
	UseIcuTokenizer() string
	// UseIcuFolding is one of "yes", "no" or "default".
	UseIcuFolding() string
	// ICUFoldingUnicodeSetFilter overrides the per-language set filter when
	// its second value is true.
	ICUFoldingUnicodeSetFilter() (string, bool)
	SimilarityProfile() string
	CompletionSuggesterSubphrases() bool
}

// Hook may change a tree after the language customization and before the
// ICU rewrites. Hooks run in registration order.
type Hook func(t *analysis.Tree, b *Builder)

var (
	hooksMu sync.RWMutex
	hooks   []Hook
)

// RegisterHook adds a hook run by every BuildConfig.
func RegisterHook(h Hook) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, h)
}

func runHooks(t *analysis.Tree, b *Builder) {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	for _, h := range hooks {
		h(t, b)
	}
}

// Builder builds analysis trees. After New it holds only read-only state,
// so BuildConfig may be called concurrently.
type Builder struct {
	defaultLanguage string
	plugins         []string
	installed       map[string]struct{}
	icu             bool
	types           map[string]string
	cfg             Config
	similarity      *similarity.Profile
}

// New returns a builder for lang, the default language of BuildConfig, on a
// cluster running plugins. A nil cfg means the default configuration.
func New(lang string, plugins []string, cfg Config) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}
	b := &Builder{
		defaultLanguage: lang,
		plugins:         append([]string(nil), plugins...),
		installed:       make(map[string]struct{}, len(plugins)),
		types:           langs.AnalyzerTypes(plugins),
		cfg:             cfg,
	}
	for _, p := range plugins {
		b.installed[p] = struct{}{}
	}
	b.icu = b.HasPlugin(PluginICU)

	profile, err := similarity.Load(cfg.SimilarityProfile())
	if err != nil {
		glog.Warningf("No similarity settings: %v", err)
	}
	b.similarity = profile
	return b
}

// HasPlugin tells whether plugin is installed.
func (b *Builder) HasPlugin(plugin string) bool {
	_, ok := b.installed[plugin]
	return ok
}

// IsIcuAvailable tells whether the ICU plugin is installed.
func (b *Builder) IsIcuAvailable() bool { return b.icu }

// Plugins returns the installed plugins.
func (b *Builder) Plugins() []string { return append([]string(nil), b.plugins...) }

// DefaultLanguage is the language BuildConfig uses when given none.
func (b *Builder) DefaultLanguage() string { return b.defaultLanguage }

// Config returns the configuration the builder reads.
func (b *Builder) Config() Config { return b.cfg }

// BuildConfig returns the analysis tree for lang, or for the default
// language when lang is empty.
func (b *Builder) BuildConfig(lang string) *analysis.Tree {
	if lang == "" {
		lang = b.defaultLanguage
	}
	t := b.defaults(lang)
	b.customize(t, lang)
	runHooks(t, b)
	if b.ShouldActivateIcuTokenization(lang) {
		b.EnableICUTokenizer(t)
	}
	if b.ShouldActivateIcuFolding(lang) {
		b.EnableICUFolding(t, lang)
	}
	b.FixASCIIFolding(t)
	return t
}

// BuildSimilarityConfig returns the similarity settings of the configured
// profile, nil when the profile could not be loaded.
func (b *Builder) BuildSimilarityConfig() map[string]any {
	if b.similarity == nil {
		return nil
	}
	return b.similarity.Similarity
}

// Similarity returns the loaded similarity profile, possibly nil.
func (b *Builder) Similarity() *similarity.Profile { return b.similarity }

// DefaultTextAnalyzerType returns the analyzer type for lang, "default" when
// the language has no dedicated analyzer.
func (b *Builder) DefaultTextAnalyzerType(lang string) string {
	if typ, ok := b.types[lang]; ok {
		return typ
	}
	return langs.DefaultType
}

// ShouldActivateIcuFolding tells whether ASCII folding is replaced by ICU
// folding for lang. It needs both the ICU and the extra plugins.
func (b *Builder) ShouldActivateIcuFolding(lang string) bool {
	if !b.icu || !b.HasPlugin(PluginExtra) {
		return false
	}
	switch b.cfg.UseIcuFolding() {
	case config.SwitchYes, "true":
		return true
	case config.SwitchNo, "false":
		return false
	case config.SwitchDefault:
		return langs.IcuFolding(lang)
	default:
		return false
	}
}

// ShouldActivateIcuTokenization tells whether the standard tokenizer is
// replaced by the ICU tokenizer for lang.
func (b *Builder) ShouldActivateIcuTokenization(lang string) bool {
	if !b.icu {
		return false
	}
	switch b.cfg.UseIcuTokenizer() {
	case config.SwitchYes:
		return true
	case config.SwitchNo:
		return false
	case config.SwitchDefault:
		return langs.IcuTokenization(lang)
	default:
		return false
	}
}

// ICUSetFilter returns the characters ICU folding leaves alone for lang.
// A configured filter wins over the per-language one.
func (b *Builder) ICUSetFilter(lang string) string {
	if filter, ok := b.cfg.ICUFoldingUnicodeSetFilter(); ok {
		return filter
	}
	return langs.UnicodeSetFilter(lang)
}

// customize applies the override registered for the language analyzer type,
// then swaps lowercase for ICU normalization when ICU is available.
func (b *Builder) customize(t *analysis.Tree, lang string) {
	typ := b.DefaultTextAnalyzerType(lang)
	if override, ok := overrides[typ]; ok {
		glog.V(2).Infof("Customizing analysis of %s with the %s override", lang, typ)
		override(b, t)
	}
	if b.icu {
		useICUNormalizer(t)
	}
}
