// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package prompt

import "context"

// Static answers prompts from a fixed table keyed by label. It backs
// scripted runs where every answer is known up front.
type Static struct {
	Values map[string]string
}

// NewStatic creates a [Static] provider over the given answers.
func NewStatic(values map[string]string) *Static {
	return &Static{Values: values}
}

// Input returns the stored answer for label, or [ErrNotInteractive] when
// no answer was configured.
func (p *Static) Input(_ context.Context, label string) (string, error) {
	value, ok := p.Values[label]
	if !ok {
		return "", ErrNotInteractive
	}

	return value, nil
}

// Secret behaves exactly like Input. Static providers make no distinction
// between visible and masked values.
func (p *Static) Secret(ctx context.Context, label string) (string, error) {
	return p.Input(ctx, label)
}
