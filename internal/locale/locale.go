package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"datepicker-bot/pkg/datepicker"
)

//go:embed locales/*.json
var localeFS embed.FS

// Ключи сообщений бота, не относящиеся к подписям пикера.
const (
	MsgPrompt = "prompt"
	MsgPicked = "picked"
	MsgToday  = "today"
	MsgCancel = "cancel"
)

// Catalog — переводы подписей пикера и сообщений бота.
type Catalog struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// Load загружает встроенные файлы locales/active.<lang>.json.
func Load(defaultLang string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("default language %q: %w", defaultLang, err)
	}
	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug("locale: skip file", "file", name)
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		slog.Debug("locale: loaded", "file", name)
	}

	tags := []language.Tag{fallback}
	for _, tag := range bundle.LanguageTags() {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}
	return &Catalog{
		bundle:   bundle,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fallback,
	}, nil
}

// Languages возвращает загруженные языки, язык по умолчанию идёт первым.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}
	return out
}

// Match подбирает поддерживаемый язык по language_code из Telegram.
func (c *Catalog) Match(code string) string {
	if code == "" {
		return c.fallback.String()
	}
	_, idx, conf := c.matcher.Match(language.Make(code))
	if conf == language.No {
		return c.fallback.String()
	}
	return c.tags[idx].String()
}

// Message возвращает перевод или сам ключ, если перевода нет.
func (c *Catalog) Message(lang, id string) string {
	loc := i18n.NewLocalizer(c.bundle, c.Match(lang))
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		slog.Debug("locale: missing translation", "lang", lang, "key", id, "error", err)
		return id
	}
	return msg
}

// Apply дополняет опции пикера переводами для языка lang.
// Подписи, уже заданные в opts, не перезаписываются.
func (c *Catalog) Apply(lang string, opts datepicker.Options) datepicker.Options {
	labels := make(map[string]string, len(opts.Labels))
	for _, key := range datepicker.LabelKeys() {
		labels[key] = c.Message(lang, key)
	}
	for k, v := range opts.Labels {
		labels[k] = v
	}
	opts.Labels = labels

	day := layoutCopy(opts.Day)
	if day.WeekdayLabels == nil {
		day.WeekdayLabels = c.series(lang, "weekday-", 7)
	}
	if day.MonthNames == nil {
		day.MonthNames = c.series(lang, "month-", 12)
	}
	opts.Day = day

	month := layoutCopy(opts.Month)
	if month.MonthLabels == nil {
		month.MonthLabels = c.series(lang, "month-short-", 12)
	}
	opts.Month = month
	return opts
}

func (c *Catalog) series(lang, prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.Message(lang, prefix+strconv.Itoa(i+1))
	}
	return out
}

func layoutCopy(l *datepicker.LayoutOptions) *datepicker.LayoutOptions {
	if l == nil {
		return &datepicker.LayoutOptions{}
	}
	cp := *l
	return &cp
}
