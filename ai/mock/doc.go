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

// Package mock provides test double implementations of AI service interfaces.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	text, err := mockProvider.Summarizer().Summarize(ctx, "Mars Soil Analysis")
//
//	// Custom behavior injection
//	mockSummarizer := mock.NewMockSummarizer()
//	mockSummarizer.SummarizeFunc = func(ctx context.Context, title string) (string, error) {
//	    return "", errors.New("rate limited")
//	}
//
//	// Check call counts
//	count := mockSummarizer.CallCount()
//
// # Default Behavior
//
//   - MockSummarizer: Returns the canned template text (see Canned)
//   - MockProvider: Wraps a MockSummarizer and reports the model "mock"
//
// Canned is also usable outside tests as an offline summarizer.
package mock
