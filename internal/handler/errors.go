// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP listen
// address is configured. The daemon has no other transport, so this is a
// fatal misconfiguration at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
