// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault gateway, its HTTP transport, and the client.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries. Several of them are part of the wire
// contract with front-end surfaces and must not be reworded.
package app

const (
	// MsgMasterPasswordNotProvided is the failure message for a request that
	// waited for an unlock and timed out. Front-end surfaces match on this
	// exact string to decide whether to prompt and retry.
	MsgMasterPasswordNotProvided = "Master password not provided"

	// MsgInvalidEncryptedData is the failure message for a blob that does
	// not have the shape of an encrypted value.
	MsgInvalidEncryptedData = "Invalid encryptedData object"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownAction is returned for a message whose action is not
	// recognised by the gateway.
	MsgUnknownAction = "unknown action"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgCredentialNotFound is returned when a credential index is out of
	// range.
	MsgCredentialNotFound = "credential not found"

	// MsgUnableToOpenTab is returned when no destination can be resolved for
	// an autofill request.
	MsgUnableToOpenTab = "Unable to open tab in specified container"

	// MsgUnableToInject is returned when the fill agent cannot be started at
	// the destination.
	MsgUnableToInject = "Unable to inject content script into tab"

	// MsgFailedToSendAutofill is returned when the fill agent rejects or
	// does not receive the autofill message.
	MsgFailedToSendAutofill = "Failed to send autofill message"
)
