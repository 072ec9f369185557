// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the sync client process: it wires local storage, the
// remote adapter, the push channel and the sync services, and runs the
// background workers until shut down.
package client
