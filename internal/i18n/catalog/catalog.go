// Package catalog holds the translation catalog: one flat key->text map per
// language, embedded in the binary and loaded once.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the language every other catalog is measured against.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is an immutable set of per-language message maps.
type Catalog struct {
	languages map[string]map[string]string
	order     []string
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/*.yaml file from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{languages: make(map[string]map[string]string, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", p, err)
		}
		if err := c.add(p, data); err != nil {
			return nil, err
		}
	}

	if _, ok := c.languages[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default language %q is not defined in catalogs", DefaultLanguage)
	}
	c.sortLanguages()
	return c, nil
}

// New builds a catalog from in-memory maps. Intended for tests and tools.
func New(languages map[string]map[string]string) *Catalog {
	c := &Catalog{languages: make(map[string]map[string]string, len(languages))}
	for lang, messages := range languages {
		c.languages[lang] = copyMap(messages)
	}
	c.sortLanguages()
	return c
}

func (c *Catalog) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", p, err)
	}

	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	lang := strings.TrimSpace(file.Language)
	if lang == "" {
		return fmt.Errorf("catalog %s: language is required", p)
	}
	if lang != fromPath {
		return fmt.Errorf("catalog %s: language %q must match file name %q", p, lang, fromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}
	if _, exists := c.languages[lang]; exists {
		return fmt.Errorf("catalog %s: language %q already defined", p, lang)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		messages[key] = value
	}
	c.languages[lang] = messages
	return nil
}

// sortLanguages keeps the default language first, the rest alphabetical.
func (c *Catalog) sortLanguages() {
	c.order = c.order[:0]
	for lang := range c.languages {
		c.order = append(c.order, lang)
	}
	sort.Slice(c.order, func(i, j int) bool {
		a, b := c.order[i], c.order[j]
		if a == DefaultLanguage || b == DefaultLanguage {
			return a == DefaultLanguage
		}
		return a < b
	})
}

// HasLanguage reports whether lang has a catalog.
func (c *Catalog) HasLanguage(lang string) bool {
	if c == nil {
		return false
	}
	_, ok := c.languages[lang]
	return ok
}

// Languages returns every language code, default language first.
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup returns the message for key in lang without any fallback.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	messages, ok := c.languages[lang]
	if !ok {
		return "", false
	}
	value, ok := messages[key]
	return value, ok
}

// Messages returns a copy of the message map for lang.
func (c *Catalog) Messages(lang string) map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return copyMap(c.languages[lang])
}

// Keys returns the sorted key set of lang.
func (c *Catalog) Keys(lang string) []string {
	if c == nil {
		return nil
	}
	messages := c.languages[lang]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// MissingKeys lists keys present in the default language but absent from lang.
func (c *Catalog) MissingKeys(lang string) []string {
	var missing []string
	for _, key := range c.Keys(DefaultLanguage) {
		if _, ok := c.Lookup(lang, key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}
