// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Action names one vault gateway operation.
type Action string

const (
	ActionSetMasterPassword Action = "setMasterPassword"
	ActionHasKey            Action = "hasKey"
	ActionEncrypt           Action = "encrypt"
	ActionDecrypt           Action = "decrypt"
	ActionAutofill          Action = "autofill"
	ActionLock              Action = "lock"
)

// Request is a message sent to the vault gateway by any front-end surface.
//
// Data carries the encrypt payload (string or structured value) for
// [ActionEncrypt] and a [CredentialRecord] for [ActionAutofill]; its decoding
// depends on Action.
type Request struct {
	Action        Action          `json:"action"`
	Password      string          `json:"password,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	EncryptedData SealedValue     `json:"encryptedData"`
}

// Status tags a gateway [Response].
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Response is the tagged result of a gateway request. A hasKey response is
// serialized as a bare JSON boolean.
type Response struct {
	Status        Status         `json:"status"`
	Message       string         `json:"message,omitempty"`
	EncryptedData *EncryptedBlob `json:"encryptedData,omitempty"`
	DecryptedData any            `json:"decryptedData,omitempty"`

	HasKey *bool `json:"-"`
	// Decrypted marks the answer to a decrypt request. Its decryptedData
	// field is always written, also when the plaintext is JSON null.
	Decrypted bool `json:"-"`
}

// decryptedResponse is the wire form of a successful decrypt.
type decryptedResponse struct {
	Status        Status `json:"status"`
	DecryptedData any    `json:"decryptedData"`
}

// SuccessResponse returns a bare success response.
func SuccessResponse() Response {
	return Response{Status: StatusSuccess}
}

// FailureResponse returns an error response carrying message.
func FailureResponse(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// KeyPresenceResponse returns the answer to a hasKey request.
func KeyPresenceResponse(hasKey bool) Response {
	return Response{Status: StatusSuccess, HasKey: &hasKey}
}

// DecryptedResponse returns the answer to a decrypt request carrying plain.
func DecryptedResponse(plain any) Response {
	return Response{Status: StatusSuccess, DecryptedData: plain, Decrypted: true}
}

// IsSuccess reports whether r is tagged as success.
func (r Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}

type responseAlias Response

func (r Response) MarshalJSON() ([]byte, error) {
	if r.HasKey != nil {
		return json.Marshal(*r.HasKey)
	}
	if r.Decrypted {
		return json.Marshal(decryptedResponse{Status: r.Status, DecryptedData: r.DecryptedData})
	}
	return json.Marshal(responseAlias(r))
}

func (r *Response) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")) {
		hasKey := bytes.Equal(trimmed, []byte("true"))
		*r = KeyPresenceResponse(hasKey)
		return nil
	}

	var alias responseAlias
	if err := json.Unmarshal(trimmed, &alias); err != nil {
		return err
	}
	*r = Response(alias)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err == nil {
		_, r.Decrypted = fields["decryptedData"]
	}
	return nil
}

// UnlockWaitResult is returned by the long-poll unlock endpoint.
type UnlockWaitResult struct {
	Unlocked bool `json:"unlocked"`
}

// VaultStatus is the daemon status report.
type VaultStatus struct {
	Version string `json:"version"`
	State   string `json:"state"`
}
