// Package classify turns raw feed posts into structured listing data
// using an LLM provider.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Abla25/roomradar/internal/domain"
)

const (
	defaultBatchSize   = 3
	defaultAPIInterval = 2 * time.Second
)

// Result is the structured verdict for a single post.
type Result struct {
	Relevant          bool   `json:"relevant"`
	Title             string `json:"title"`
	Overview          string `json:"overview"`
	Description       string `json:"description"`
	Price             string `json:"price"`
	Rooms             string `json:"rooms"`
	Zone              string `json:"zone"`
	Reliability       int    `json:"reliability"`
	ReliabilityReason string `json:"reliability_reason"`
	PublishedAt       string `json:"published_at"`
}

// Outcome pairs a post with its classification. Err is set when the
// post could not be classified even one at a time.
type Outcome struct {
	Post   domain.RawPost
	Result Result
	Err    error
}

// Classifier batches posts through a Provider, shrinking the batch
// size when a reply fails to parse.
type Classifier struct {
	provider  Provider
	batchSize int
	limiter   *rate.Limiter
}

type ClassifierOption func(*Classifier)

func WithBatchSize(n int) ClassifierOption {
	return func(c *Classifier) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

func WithAPIInterval(d time.Duration) ClassifierOption {
	return func(c *Classifier) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func NewClassifier(provider Provider, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		provider:  provider,
		batchSize: defaultBatchSize,
		limiter:   rate.NewLimiter(rate.Every(defaultAPIInterval), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyAll processes every post, batched. A failed batch is retried
// one post at a time so a single malformed reply cannot sink its
// neighbours.
func (c *Classifier) ClassifyAll(ctx context.Context, posts []domain.RawPost) []Outcome {
	outcomes := make([]Outcome, 0, len(posts))

	for start := 0; start < len(posts); start += c.batchSize {
		end := min(start+c.batchSize, len(posts))
		batch := posts[start:end]

		results, err := c.classifyBatch(ctx, batch)
		if err == nil {
			for i, p := range batch {
				outcomes = append(outcomes, Outcome{Post: p, Result: results[i]})
			}
			continue
		}

		slog.Warn("batch classification failed, retrying posts individually",
			"batch_size", len(batch), "error", err)
		for _, p := range batch {
			results, err := c.classifyBatch(ctx, []domain.RawPost{p})
			if err != nil {
				slog.Error("failed to classify post", "link", p.Link, "error", err)
				outcomes = append(outcomes, Outcome{Post: p, Err: err})
				continue
			}
			outcomes = append(outcomes, Outcome{Post: p, Result: results[0]})
		}
	}

	return outcomes
}

func (c *Classifier) classifyBatch(ctx context.Context, batch []domain.RawPost) ([]Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reply, err := c.provider.Complete(ctx, Request{
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   buildClassifyPrompt(batch),
	})
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	var results []Result
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		// A single-post reply may come back as a bare object.
		var single Result
		if len(batch) == 1 && json.Unmarshal([]byte(payload), &single) == nil {
			return []Result{single}, nil
		}
		return nil, fmt.Errorf("failed to parse classification: %w", err)
	}
	if len(results) != len(batch) {
		return nil, fmt.Errorf("got %d results for %d posts", len(results), len(batch))
	}

	return results, nil
}

// InferZone asks the provider to pick a macro-zone for a listing whose
// stated zone matched nothing. The reply is only accepted when it names
// one of the allowed zones.
func (c *Classifier) InferZone(ctx context.Context, rawZone, title, description string, zones []string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reply, err := c.provider.Complete(ctx, Request{
		SystemPrompt: zoneSystemPrompt,
		UserPrompt:   buildZonePrompt(rawZone, title, description, zones),
		MaxTokens:    64,
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `"'`))
	for _, z := range zones {
		if strings.EqualFold(answer, z) {
			return z, nil
		}
	}
	return "", nil
}
