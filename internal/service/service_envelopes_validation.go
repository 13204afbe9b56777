// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-minichat/internal/validators"
	"github.com/MKhiriev/go-minichat/models"
)

// EnvelopeValidationService rejects malformed envelopes and mailbox names
// before they reach the wrapped EnvelopeService.
type EnvelopeValidationService struct {
	inner     EnvelopeService
	validator validators.Validator
}

func NewEnvelopeValidationService() EnvelopeServiceWrapper {
	return &EnvelopeValidationService{
		validator: validators.NewEnvelopeValidator(),
	}
}

func (v *EnvelopeValidationService) Wrap(inner EnvelopeService) EnvelopeService {
	v.inner = inner
	return v
}

func (v *EnvelopeValidationService) Post(ctx context.Context, sender string, envs []models.Envelope) error {
	if err := v.validator.Validate(ctx, sender); err != nil {
		return fmt.Errorf("%w: sender: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, models.PostEnvelopesRequest{Envelopes: envs}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Post(ctx, sender, envs)
}

func (v *EnvelopeValidationService) Fetch(ctx context.Context, mailbox string, limit int) ([]models.Envelope, error) {
	if err := v.validator.Validate(ctx, mailbox); err != nil {
		return nil, fmt.Errorf("%w: mailbox: %w", ErrInvalidDataProvided, err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit", ErrInvalidDataProvided)
	}

	return v.inner.Fetch(ctx, mailbox, limit)
}

func (v *EnvelopeValidationService) PurgeExpired(ctx context.Context) (int64, error) {
	return v.inner.PurgeExpired(ctx)
}
