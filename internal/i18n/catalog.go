package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Catalog holds user-facing messages keyed by locale and message key.
// Core packages emit error kinds only; handlers resolve them to text
// through the catalog, so no user-facing string is hardcoded in Go code.
type Catalog struct {
	locale   string
	messages map[string]map[string]string // locale -> key -> message
}

// Load reads every "<locale>.toml" file in dir. Each file is a flat
// table of key = "message" pairs; dotted keys are allowed through
// nested tables and flattened with "." separators.
func Load(dir, locale string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: failed to read messages dir %s: %w", dir, err)
	}

	c := &Catalog{
		locale:   locale,
		messages: make(map[string]map[string]string),
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".toml") {
			continue
		}

		var raw map[string]interface{}
		if _, err := toml.DecodeFile(filepath.Join(dir, name), &raw); err != nil {
			return nil, fmt.Errorf("i18n: failed to decode %s: %w", name, err)
		}

		loc := strings.TrimSuffix(name, ".toml")
		flat := make(map[string]string)
		flatten("", raw, flat)
		c.messages[loc] = flat
	}

	if _, ok := c.messages[locale]; !ok {
		return nil, fmt.Errorf("i18n: no messages for configured locale %q in %s", locale, dir)
	}

	return c, nil
}

// T resolves a message key in the configured locale.
// Unknown keys resolve to the key itself so a missing translation is
// visible rather than silent.
func (c *Catalog) T(key string) string {
	if msg, ok := c.messages[c.locale][key]; ok {
		return msg
	}
	return key
}

// Locale returns the configured locale.
func (c *Catalog) Locale() string {
	return c.locale
}

func flatten(prefix string, raw map[string]interface{}, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]interface{}:
			flatten(key, val, out)
		}
	}
}
