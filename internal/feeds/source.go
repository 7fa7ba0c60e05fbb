// Package feeds fetches raw classified-ad posts from a city's RSS feeds.
package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Abla25/roomradar/internal/domain"
)

// Source aggregates one city's RSS feeds.
type Source struct {
	city   string
	urls   []string
	parser *gofeed.Parser
}

func NewSource(city string, urls []string) *Source {
	return &Source{
		city:   city,
		urls:   urls,
		parser: gofeed.NewParser(),
	}
}

// Fetch retrieves every configured feed and returns the flattened posts,
// summaries already reduced to plain text. A feed that fails to parse is
// logged and skipped; an error is returned only when every feed failed.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawPost, error) {
	var posts []domain.RawPost
	failures := 0

	for _, url := range s.urls {
		feed, err := s.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			slog.Warn("failed to fetch feed", "city", s.city, "url", url, "error", err)
			failures++
			continue
		}

		for _, entry := range feed.Items {
			if entry.Link == "" {
				continue
			}

			published := time.Now()
			if entry.PublishedParsed != nil {
				published = *entry.PublishedParsed
			} else if entry.UpdatedParsed != nil {
				published = *entry.UpdatedParsed
			}

			summary := entry.Description
			if summary == "" {
				summary = entry.Content
			}

			posts = append(posts, domain.RawPost{
				Title:     CleanHTML(entry.Title),
				Link:      entry.Link,
				Summary:   CleanHTML(summary),
				Published: published,
			})
		}
	}

	if failures > 0 && failures == len(s.urls) {
		return nil, fmt.Errorf("all %d feeds failed for %s", failures, s.city)
	}

	slog.Info("fetched feeds", "city", s.city, "feeds", len(s.urls), "posts", len(posts))
	return posts, nil
}
