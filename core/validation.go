// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"
	"time"
)

// ValidatePublication validates a Publication according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Link must not be empty
//
// Publications built with NewPublication always pass.
func ValidatePublication(pub *Publication) error {
	if pub == nil {
		return fmt.Errorf("%w: publication is nil", ErrInvalidPublication)
	}

	if pub.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPublication, ErrEmptyTitle)
	}

	if pub.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPublication, ErrEmptyLink)
	}

	return nil
}

// ValidateSummary validates a Summary before it is cached.
//
// Validation rules:
//   - Text must not be empty
//   - CreatedAt must not be in the future
func ValidateSummary(summary *Summary) error {
	if summary == nil {
		return fmt.Errorf("%w: summary is nil", ErrInvalidSummary)
	}

	if summary.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSummary, ErrEmptySummaryText)
	}

	if !IsValidTimestamp(summary.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidSummary, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
