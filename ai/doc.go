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

// Package ai provides abstractions for the language-model services used by pubcat.
//
// The only service is summarization: given a publication title, produce a
// short plain-language explanation of it.
//
//   - Summarizer: Generates a summary for a title
//   - Provider: Owns a Summarizer and the model it talks to
//
// # Implementation Packages
//
//   - ai/openai: chat-completion implementation for OpenAI-compatible APIs
//     (the Hugging Face router by default)
//   - ai/mock: test doubles and an offline summarizer with a fixed template
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewSummarizer) return
// interface types. Test constructors in ai/mock return concrete types so tests
// can inject behavior and assert on call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithToken(os.Getenv("HUGGINGFACE_TOKEN")))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Summarizer().Summarize(ctx, "Mars Soil Analysis")
package ai
