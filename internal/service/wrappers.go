// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// EnvelopeServiceWrapper defines middleware composition for EnvelopeService.
// Implementations wrap an existing EnvelopeService to add behavior such as
// validation.
type EnvelopeServiceWrapper interface {
	Wrap(EnvelopeService) EnvelopeService
}
