// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the relay's periodic background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails for good; cancellation is not an error.
type Worker interface {
	Run(ctx context.Context) error
}
