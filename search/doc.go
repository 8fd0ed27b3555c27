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

// Package search derives suggestion and result lists from a publication catalog.
//
// Both views use the same predicate, Matches: the query must appear in the
// title as a case-insensitive substring. Because of that, every suggestion is
// also present in the filtered list, in the same relative order:
//
//   - Suggest returns at most MaxSuggestions matches, nothing for a blank query
//   - Filter returns every match; an empty query matches everything
//
// Case-insensitivity uses Unicode case folding rather than ASCII lowering, so
// Greek and Cyrillic titles ("МАРС", "марс") compare the same way Latin ones do.
//
// The functions are pure: they read the catalog and never modify it. Engine
// binds them to a SnapshotSource such as catalog.Store so that each call
// runs against whatever snapshot is current when it starts.
package search
