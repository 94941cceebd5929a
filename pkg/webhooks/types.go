// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the identity payload posted by the registration hook.
type KratosIdentity struct {
	ID     string       `json:"id" validate:"required"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Username string     `json:"username" validate:"required,max=100"`
	Name     KratosName `json:"name"`
}

type KratosName struct {
	First string `json:"first" validate:"max=100"`
	Last  string `json:"last" validate:"max=100"`
}

// TokenHookResponse carries the claims Hydra merges into the issued tokens.
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}

type TokenHookSession struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}
