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

// Package storage provides the storage abstraction for cached summaries.
//
// The catalog itself is never persisted; it is reloaded from its CSV source.
// What is stored is the output of the summarization model, so repeated
// requests for the same publication do not hit the model again.
//
// # Constructor Return Type Pattern
//
// Public constructors return the interface, not the concrete type:
//
//	repo, err := badger.NewSummaryRepository(backend)  // returns storage.SummaryRepository
//
// Internal constructors inside an implementation package may return
// concrete types.
//
// # Usage
//
// Persistent cache:
//
//	backend, err := badger.OpenBackend("/path/to/cache", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo, err := badger.NewSummaryRepository(backend, badger.WithTTL(24*time.Hour))
//
// In tests:
//
//	repo, backend, err := badger.NewMemorySummaryRepository()
//	defer backend.Close()
//
// # Encoding
//
// Records are encoded with MUS (see MarshalSummary). Decoding failures wrap
// ErrSerializationFailed.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
