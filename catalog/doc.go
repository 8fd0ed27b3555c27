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

// Package catalog loads publication catalogs from delimited text.
//
// Loading is split into three steps that can be used independently:
//
//   - Fetch opens a source (local path or http(s) URL)
//   - Parse reads header-keyed rows from CSV
//   - Load normalizes rows into a core.Catalog
//
// Load never fails: rows with missing or empty fields become publications
// carrying the placeholder title and link from the core package.
//
// # Snapshots
//
// A Store holds the catalog currently visible to searches. Publishing a new
// catalog replaces the snapshot reference atomically; catalogs are never
// edited in place, so readers need no locking.
//
//	store := catalog.NewStore()
//	if err := store.Refresh(ctx, "data/publications.csv"); err != nil {
//	    // store.Snapshot() is still usable, possibly empty
//	}
//
// A Watcher reloads a local source into a Store whenever the file changes.
package catalog
