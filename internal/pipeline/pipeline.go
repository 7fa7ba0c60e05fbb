// Package pipeline wires feed ingestion, classification, censoring,
// zone labelling and duplicate handling into one run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Abla25/roomradar/internal/censor"
	"github.com/Abla25/roomradar/internal/classify"
	"github.com/Abla25/roomradar/internal/dedup"
	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
	"github.com/Abla25/roomradar/internal/zone"
)

// MacroZoneOther labels listings no zone token or fallback could place.
const MacroZoneOther = "Other"

const (
	reasonNotRelevant = "not a rental listing"
	maxReliability    = 5
)

// Fetcher pulls raw posts from the configured feeds.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.RawPost, error)
}

// Classifier is the LLM-backed post classifier.
type Classifier interface {
	ClassifyAll(ctx context.Context, posts []domain.RawPost) []classify.Outcome
	InferZone(ctx context.Context, rawZone, title, description string, zones []string) (string, error)
}

// RejectCache remembers links already judged unusable.
type RejectCache interface {
	IsRejected(url string) bool
	AddRejected(url, reason string) error
}

// SearchIndexer mirrors listing changes into the search index.
type SearchIndexer interface {
	Index(ctx context.Context, listing domain.Listing) error
	SetStatus(ctx context.Context, id string, status domain.Status) error
}

// Stats summarizes one pipeline run.
type Stats struct {
	Fetched       int
	SkippedCached int
	SkippedKnown  int
	Rejected      int
	Failed        int
	Duplicates    int
	Created       int
}

type Pipeline struct {
	city       string
	fetcher    Fetcher
	classifier Classifier
	censor     *censor.Censor
	zones      *zone.Classifier
	detector   *dedup.Detector
	rejects    RejectCache
	store      storage.ListingStore
	indexer    SearchIndexer
	threshold  float64
}

type Config struct {
	City       string
	Fetcher    Fetcher
	Classifier Classifier
	Zones      *zone.Classifier
	Rejects    RejectCache
	Store      storage.ListingStore
	// Indexer is optional, nil disables search mirroring.
	Indexer   SearchIndexer
	Threshold float64
}

func New(cfg Config) *Pipeline {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = dedup.DefaultThreshold
	}
	return &Pipeline{
		city:       cfg.City,
		fetcher:    cfg.Fetcher,
		classifier: cfg.Classifier,
		censor:     censor.New(),
		zones:      cfg.Zones,
		detector:   dedup.NewDetector(),
		rejects:    cfg.Rejects,
		store:      cfg.Store,
		indexer:    cfg.Indexer,
		threshold:  threshold,
	}
}

// Run executes one full ingest cycle and returns its stats.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	posts, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch feeds: %w", err)
	}
	stats.Fetched = len(posts)

	fresh := make([]domain.RawPost, 0, len(posts))
	for _, post := range posts {
		if p.rejects.IsRejected(post.Link) {
			stats.SkippedCached++
			continue
		}
		if _, err := p.store.FindByLink(ctx, post.Link); err == nil {
			stats.SkippedKnown++
			continue
		}
		fresh = append(fresh, post)
	}

	slog.Info("feed posts collected",
		"city", p.city,
		"fetched", stats.Fetched,
		"skipped_cached", stats.SkippedCached,
		"skipped_known", stats.SkippedKnown,
		"to_classify", len(fresh))

	if len(fresh) == 0 {
		return stats, nil
	}

	for _, outcome := range p.classifier.ClassifyAll(ctx, fresh) {
		if outcome.Err != nil {
			// Left out of the reject cache so the next run retries it.
			stats.Failed++
			continue
		}
		if !outcome.Result.Relevant {
			if err := p.rejects.AddRejected(outcome.Post.Link, reasonNotRelevant); err != nil {
				slog.Error("failed to record rejected link", "link", outcome.Post.Link, "error", err)
			}
			stats.Rejected++
			continue
		}

		created, err := p.processListing(ctx, outcome, &stats)
		if err != nil {
			slog.Error("failed to process listing", "link", outcome.Post.Link, "error", err)
			stats.Failed++
			continue
		}
		if created {
			stats.Created++
		}
	}

	slog.Info("pipeline run finished",
		"city", p.city,
		"created", stats.Created,
		"duplicates", stats.Duplicates,
		"rejected", stats.Rejected,
		"failed", stats.Failed)

	return stats, nil
}

func (p *Pipeline) processListing(ctx context.Context, outcome classify.Outcome, stats *Stats) (bool, error) {
	listing := p.buildListing(outcome)

	listing.MacroZone = p.resolveMacroZone(ctx, listing)

	// Newest wins: an incoming duplicate expires its stored twin.
	corpus, err := p.store.QueryActive(ctx, p.city)
	if err != nil {
		return false, fmt.Errorf("failed to load active listings: %w", err)
	}
	if match, score := p.detector.FindBestMatch(corpus, listing.Description, p.threshold); match != nil {
		slog.Info("duplicate listing found, expiring stored one",
			"stored_link", match.Link,
			"incoming_link", listing.Link,
			"score", score)
		if err := p.store.SetStatus(ctx, match.ID, domain.StatusExpired); err != nil {
			return false, fmt.Errorf("failed to expire duplicate: %w", err)
		}
		if p.indexer != nil {
			if err := p.indexer.SetStatus(ctx, match.ID.String(), domain.StatusExpired); err != nil {
				slog.Error("failed to expire duplicate in search index", "id", match.ID, "error", err)
			}
		}
		stats.Duplicates++
	}

	id, err := p.store.Create(ctx, listing)
	if err != nil {
		return false, fmt.Errorf("failed to store listing: %w", err)
	}
	listing.ID = id

	if p.indexer != nil {
		if err := p.indexer.Index(ctx, listing); err != nil {
			slog.Error("failed to index listing", "id", id, "error", err)
		}
	}

	return true, nil
}

func (p *Pipeline) buildListing(outcome classify.Outcome) domain.Listing {
	res := outcome.Result

	listing := domain.Listing{
		Link:              outcome.Post.Link,
		Title:             p.censor.Redact(res.Title),
		Overview:          p.censor.Redact(res.Overview),
		Description:       p.censor.Redact(res.Description),
		Price:             res.Price,
		Rooms:             res.Rooms,
		Zone:              res.Zone,
		Reliability:       clampReliability(res.Reliability),
		ReliabilityReason: res.ReliabilityReason,
		Status:            domain.StatusActive,
		PublishedAt:       outcome.Post.Published,
		CreatedAt:         time.Now(),
		City:              p.city,
	}
	if listing.Title == "" {
		listing.Title = p.censor.Redact(outcome.Post.Title)
	}
	return listing
}

// clampReliability forces model output into the 0 to 5 score range.
func clampReliability(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxReliability {
		return maxReliability
	}
	return score
}

func (p *Pipeline) resolveMacroZone(ctx context.Context, listing domain.Listing) string {
	match, ok := p.zones.Infer(listing.Zone, listing.Title, listing.Description)
	if ok {
		return match.MacroZone
	}

	if p.zones.NeedsFallback(listing.Zone, ok) {
		inferred, err := p.classifier.InferZone(ctx, listing.Zone, listing.Title, listing.Description, p.zones.MacroZones())
		if err != nil {
			slog.Warn("zone fallback failed", "link", listing.Link, "error", err)
		}
		if inferred != "" {
			return inferred
		}
	}

	return MacroZoneOther
}
