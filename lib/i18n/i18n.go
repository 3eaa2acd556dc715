// Package i18n resolves message keys such as "users.created_successfully"
// into localized text loaded from YAML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Translator holds one flattened catalog per locale
type Translator struct {
	fallback string
	catalogs map[string]map[string]string
	locales  []string
	matcher  language.Matcher
}

// New loads the catalogs bundled with the binary
func New(fallback string) (*Translator, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback)
}

// Load reads every <locale>.yaml file at the root of fsys
func Load(fsys fs.FS, fallback string) (*Translator, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	catalogs := make(map[string]map[string]string, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}

		var tree map[string]interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", file, err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		catalogs[strings.TrimSuffix(path.Base(file), ".yaml")] = flat
	}

	if _, ok := catalogs[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q has no catalog", fallback)
	}

	// The matcher treats the first tag as its default, so the fallback goes first.
	locales := []string{fallback}
	for locale := range catalogs {
		if locale != fallback {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales[1:])

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s is not a language tag: %w", locale, err)
		}
		tags = append(tags, tag)
	}

	return &Translator{
		fallback: fallback,
		catalogs: catalogs,
		locales:  locales,
		matcher:  language.NewMatcher(tags),
	}, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// Fallback returns the locale used when nothing better matches
func (t *Translator) Fallback() string {
	return t.fallback
}

// Resolve picks a supported locale from the "lang" query value, then from
// an Accept-Language header, then the fallback.
func (t *Translator) Resolve(queryLang, acceptLanguage string) string {
	if queryLang != "" {
		if tag, err := language.Parse(queryLang); err == nil {
			if _, index, confidence := t.matcher.Match(tag); confidence != language.No {
				return t.locales[index]
			}
		}
	}

	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if _, index, confidence := t.matcher.Match(tags...); confidence != language.No {
				return t.locales[index]
			}
		}
	}

	return t.fallback
}

// T returns the message for key in locale. Unknown keys fall back to the
// fallback catalog and then to the key itself.
func (t *Translator) T(locale, key string) string {
	if msg, ok := t.catalogs[locale][key]; ok {
		return msg
	}
	if msg, ok := t.catalogs[t.fallback][key]; ok {
		return msg
	}
	return key
}

// Tf is T with {{name}} placeholders replaced from params
func (t *Translator) Tf(locale, key string, params map[string]string) string {
	msg := t.T(locale, key)
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
