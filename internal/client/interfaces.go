// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client process.
type Client interface {
	// Run blocks until ctx is cancelled or a worker fails.
	Run(ctx context.Context) error

	// Close releases storage and stops the services.
	Close() error
}
