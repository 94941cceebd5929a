// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "net/http"

type TranslatorInterface interface {
	Translate(msgID, lang string, data map[string]interface{}) string
	LanguageFromRequest(r *http.Request) string
}
