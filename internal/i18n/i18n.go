// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LanguageHeader lets clients pick the message language explicitly, it wins
// over Accept-Language
const LanguageHeader = "X-Lang"

//go:embed locales/*.toml
var locales embed.FS

var supported = []language.Tag{language.Arabic, language.English}

type Translator struct {
	bundle      *goi18n.Bundle
	defaultLang language.Tag
	matcher     language.Matcher
}

// NewTranslator loads the embedded message files, defaultLang is used when
// the request carries no usable preference
func NewTranslator(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return &Translator{
		bundle:      bundle,
		defaultLang: tag,
		matcher:     language.NewMatcher(supported),
	}, nil
}

// Translate returns the localized message, falling back to the default
// language and finally to the message id itself
func (t *Translator) Translate(msgID, lang string, data map[string]interface{}) string {
	localizer := goi18n.NewLocalizer(t.bundle, lang, t.defaultLang.String())

	lc := &goi18n.LocalizeConfig{MessageID: msgID}
	if len(data) > 0 {
		lc.TemplateData = data
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID
	}

	return msg
}

// LanguageFromRequest resolves the caller language from X-Lang or
// Accept-Language against the supported set
func (t *Translator) LanguageFromRequest(r *http.Request) string {
	prefs := make([]language.Tag, 0, 2)

	if l := strings.TrimSpace(r.Header.Get(LanguageHeader)); l != "" {
		if tag, err := language.Parse(l); err == nil {
			prefs = append(prefs, tag)
		}
	}

	if accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil {
		prefs = append(prefs, accepted...)
	}

	if len(prefs) == 0 {
		return t.defaultLang.String()
	}

	_, idx, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.defaultLang.String()
	}

	return supported[idx].String()
}
