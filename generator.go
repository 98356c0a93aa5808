package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/borgmon/games-board/pkg/calendar"
	"github.com/borgmon/games-board/pkg/display"
	"github.com/borgmon/games-board/pkg/models"
	"github.com/borgmon/games-board/pkg/render"
	"github.com/google/uuid"
)

// Generator runs one fetch → select → render pass
type Generator struct {
	config    *models.Config
	loc       *time.Location
	fetcher   *calendar.Fetcher
	extractor *display.Extractor
	renderer  *render.Renderer
	now       func() time.Time
	newRunID  func() string
}

// NewGenerator validates config and wires the pipeline components
func NewGenerator(config *models.Config, client *http.Client) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	loc, err := config.Location()
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(config.Layout, config.Title)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client = &http.Client{Timeout: config.Timeout()}
	}

	return &Generator{
		config:    config,
		loc:       loc,
		fetcher:   calendar.NewFetcher(config.FeedURL, client),
		extractor: display.NewExtractor(config.SportStrategy, display.NewFormatter(loc, config.DateLayout, config.TimeLayout)),
		renderer:  renderer,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}, nil
}

// Run fetches the feed and rewrites the output file. On any error the
// previous output is left untouched.
func (g *Generator) Run(ctx context.Context) error {
	now := g.now()
	runID := g.newRunID()
	log.Printf("[RUN] %s: fetching %s", runID, g.fetcher.URL())

	body, err := g.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	entries, err := calendar.Parse(body, calendar.ParseOptions{
		Location:       g.loc,
		Now:            now,
		MaxOccurrences: g.config.Limit,
	})
	if err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}

	events := calendar.Select(entries, now, calendar.SelectOptions{
		Limit:         g.config.Limit,
		SkipCancelled: g.config.SkipCancelled,
	})
	rows := g.extractor.Rows(events)

	doc, err := g.renderer.RenderBytes(rows, now.In(g.loc), runID)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := render.WriteFile(g.config.OutputPath, doc); err != nil {
		return err
	}

	log.Printf("[OK] %s: %d events written to %s", runID, len(rows), g.config.OutputPath)
	return nil
}
