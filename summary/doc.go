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

// Package summary produces plain-language summaries of publications.
//
// A Service sits between callers, an ai.Summarizer and a
// storage.SummaryRepository. Lookups go to the cache first; on a miss the
// model is asked with exponential backoff, concurrent requests for the same
// publication share one model call, and the result is cached.
//
// # Display Text
//
// Service.Text never fails. It renders "No summary available" when the
// model answered with nothing and "AI summary failed" when the request
// could not be completed.
//
// # Warming
//
// Batch fills the cache for many publications at once on a bounded worker
// pool, optionally rate limited, and reports progress to a writer:
//
//	batch, err := summary.NewBatch(service,
//	    summary.WithWorkers(4),
//	    summary.WithRate(2),
//	    summary.WithProgress(os.Stderr, 10),
//	)
//	stats, err := batch.Run(ctx, pubs)
package summary
