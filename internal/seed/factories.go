// Package seed provides helpers to create demo data for the feed. These
// helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"echowall/internal/kv"
	"echowall/internal/models"
	"echowall/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds synthetic feed content.
type Factory struct {
	r *rand.Rand
}

// NewFactory creates a new Factory with a time-based seed.
func NewFactory() *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{r: rand.New(rand.NewSource(seed))}
}

// BuildAuthor returns a synthetic session identity.
func (f *Factory) BuildAuthor() models.User {
	return models.User{
		ID:   gofakeit.UUID(),
		Name: gofakeit.Username(),
	}
}

// Demo populates key in kvStore with n posts from a handful of synthetic
// authors, with creation times spread over the past maxDays days. Posts are
// created oldest first so canonical order matches time order.
func (f *Factory) Demo(ctx context.Context, kvStore kv.Store, key string, n, maxDays int) error {
	if maxDays <= 0 {
		maxDays = 30
	}

	// Backdate creation through the store's clock so the persisted blob
	// stays consistent with what Create would have written.
	var stamp time.Time
	posts := store.New(kvStore, key, store.WithClock(func() time.Time { return stamp }))
	if err := posts.Load(ctx); err != nil {
		return err
	}

	authors := []models.User{f.BuildAuthor(), f.BuildAuthor(), f.BuildAuthor()}
	span := time.Duration(maxDays) * 24 * time.Hour
	base := time.Now().Add(-span)

	for i := 0; i < n; i++ {
		frac := (float64(i) + f.r.Float64()) / float64(n)
		stamp = base.Add(time.Duration(float64(span) * frac))

		author := authors[f.r.Intn(len(authors))]
		imageURL := ""
		if f.r.Intn(3) == 0 {
			imageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		if _, err := posts.Create(ctx, author.ID, author.Name, gofakeit.Sentence(6+f.r.Intn(10)), imageURL); err != nil {
			return err
		}
	}
	return nil
}
