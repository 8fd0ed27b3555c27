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

// Package pubcat searches a catalog of publications loaded from a CSV source
// and explains them in plain language.
//
// A Library ties the pieces together: the catalog snapshot store, the
// search engine, the knowledge graph and the cached summary service.
//
//	lib, err := pubcat.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	if err := lib.Load(ctx, "data/SB_publication_PMC.csv"); err != nil {
//	    log.Printf("catalog unavailable: %v", err) // queries still work, over an empty catalog
//	}
//	for _, pub := range lib.Suggest("mice") {
//	    fmt.Println(pub.Title, lib.SummaryText(ctx, pub))
//	}
package pubcat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/pubcat/ai"
	"github.com/poiesic/pubcat/ai/openai"
	"github.com/poiesic/pubcat/catalog"
	"github.com/poiesic/pubcat/core"
	"github.com/poiesic/pubcat/graph"
	"github.com/poiesic/pubcat/search"
	"github.com/poiesic/pubcat/storage"
	"github.com/poiesic/pubcat/storage/badger"
	"github.com/poiesic/pubcat/summary"
)

type Library struct {
	store     *catalog.Store
	engine    *search.Engine
	backend   *badger.Backend
	summaries storage.SummaryRepository
	provider  ai.Provider
	service   *summary.Service
	logger    *slog.Logger

	mu       sync.Mutex
	watchers []*catalog.Watcher
}

// Option configures a Library.
type Option func(*libraryOptions) error

type libraryOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	cacheDir string
	ttl      time.Duration
	logger   *slog.Logger
}

// WithAIConfig sets the model configuration used when no provider is given.
func WithAIConfig(config *ai.Config) Option {
	return func(o *libraryOptions) error {
		o.aiConfig = config
		return nil
	}
}

// WithProvider supplies the summarization provider directly.
// The Library takes ownership and closes it.
func WithProvider(provider ai.Provider) Option {
	return func(o *libraryOptions) error {
		o.provider = provider
		return nil
	}
}

// WithCacheDir keeps summaries on disk in dir. Default is in-memory.
func WithCacheDir(dir string) Option {
	return func(o *libraryOptions) error {
		o.cacheDir = dir
		return nil
	}
}

// WithSummaryTTL sets how long cached summaries live. Zero keeps them forever.
func WithSummaryTTL(ttl time.Duration) Option {
	return func(o *libraryOptions) error {
		if ttl < 0 {
			return storage.ErrInvalidTTL
		}
		o.ttl = ttl
		return nil
	}
}

// WithLogger sets a custom logger shared by every component.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *libraryOptions) error {
		o.logger = logger
		return nil
	}
}

// NewLibrary creates a library with an empty catalog. Call Load to fill it.
func NewLibrary(opts ...Option) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
		ttl:      badger.DefaultTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	logger := options.logger

	backend, err := badger.OpenBackend(options.cacheDir, options.cacheDir == "", badger.WithBackendLogger(logger))
	if err != nil {
		return nil, err
	}

	summaries, err := badger.NewSummaryRepository(backend, badger.WithTTL(options.ttl))
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			summaries.Close()
			backend.Close()
			return nil, err
		}
	}

	closeAll := func() {
		provider.Close()
		summaries.Close()
		backend.Close()
	}

	service, err := summary.NewService(provider.Summarizer(), summaries,
		summary.WithModel(provider.Model()),
		summary.WithLogger(logger),
	)
	if err != nil {
		closeAll()
		return nil, err
	}

	store := catalog.NewStore(catalog.WithStoreLogger(logger))
	engine, err := search.NewEngine(store, search.WithLogger(logger))
	if err != nil {
		closeAll()
		return nil, err
	}

	return &Library{
		store:     store,
		engine:    engine,
		backend:   backend,
		summaries: summaries,
		provider:  provider,
		service:   service,
		logger:    logger.With("component", "library"),
	}, nil
}

// Load reads the catalog from source and publishes it. On failure the
// previous catalog stays visible, or an empty one if none was ever loaded.
func (l *Library) Load(ctx context.Context, source string) error {
	return l.store.Refresh(ctx, source)
}

// Watch reloads the catalog whenever the local file at source changes.
// Watchers stop on Close.
func (l *Library) Watch(source string, opts ...catalog.WatcherOption) error {
	opts = append([]catalog.WatcherOption{catalog.WithWatcherLogger(l.logger)}, opts...)
	w, err := catalog.NewWatcher(l.store, source, opts...)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.watchers = append(l.watchers, w)
	l.mu.Unlock()
	return nil
}

// Catalog returns the current snapshot.
func (l *Library) Catalog() *core.Catalog {
	return l.store.Snapshot()
}

// Suggest returns up to five publications whose titles contain query.
func (l *Library) Suggest(query string) []core.Publication {
	return l.engine.Suggest(query)
}

// Filter returns every publication whose title contains query.
func (l *Library) Filter(query string) []core.Publication {
	return l.engine.Filter(query)
}

// Search returns suggestions and filtered matches from one snapshot.
func (l *Library) Search(query string) search.Results {
	return l.engine.Search(query)
}

// Graph builds the knowledge graph of the current snapshot.
func (l *Library) Graph() *graph.Graph {
	return graph.Build(l.store.Snapshot())
}

// Summarize returns the cached or freshly generated summary of pub.
func (l *Library) Summarize(ctx context.Context, pub core.Publication) (*core.Summary, error) {
	return l.service.Summarize(ctx, pub)
}

// SummaryText returns display text for pub and never fails.
func (l *Library) SummaryText(ctx context.Context, pub core.Publication) string {
	return l.service.Text(ctx, pub)
}

// WarmSummaries fills the summary cache for pubs.
func (l *Library) WarmSummaries(ctx context.Context, pubs []core.Publication, opts ...summary.BatchOption) (summary.BatchStats, error) {
	opts = append([]summary.BatchOption{summary.WithBatchLogger(l.logger)}, opts...)
	batch, err := summary.NewBatch(l.service, opts...)
	if err != nil {
		return summary.BatchStats{}, err
	}
	return batch.Run(ctx, pubs)
}

// Close stops watchers and releases the provider and the summary cache.
func (l *Library) Close() error {
	l.mu.Lock()
	watchers := l.watchers
	l.watchers = nil
	l.mu.Unlock()

	for _, w := range watchers {
		if err := w.Close(); err != nil {
			l.logger.Error("error closing catalog watcher", "err", err)
		}
	}

	// Close AI provider first
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing AI provider", "err", err)
	}

	if err := l.summaries.Close(); err != nil {
		l.logger.Error("error closing summary repository", "err", err)
		return err
	}

	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing summary cache", "err", err)
		return err
	}
	return nil
}
