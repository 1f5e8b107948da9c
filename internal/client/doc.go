// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements vaultctl, the command-line front end of the
// vault daemon.
//
// Every command talks to the daemon through [adapter.VaultClient]. Commands
// that need the key check first whether the vault is unlocked and, if not,
// ask for the master password in the terminal UI. A request that still fails
// with "Master password not provided" is retried exactly once after another
// unlock attempt.
package client
