package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
)

type (
	categoryOut struct {
		ID          uuid.UUID `json:"id"`
		Title       string    `json:"title"`
		Slug        string    `json:"slug"`
		Description string    `json:"description"`
		ImageURL    *string   `json:"imageUrl,omitempty"`
		Order       int       `json:"order"`
		IsActive    bool      `json:"isActive"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	// articleOut omits content in listings.
	articleOut struct {
		ID          uuid.UUID `json:"id"`
		CategoryID  uuid.UUID `json:"categoryId"`
		Title       string    `json:"title"`
		Slug        string    `json:"slug"`
		Content     *string   `json:"content,omitempty"`
		Summary     string    `json:"summary"`
		ReadingTime int       `json:"readingTime"`
		Level       string    `json:"level"`
		Language    string    `json:"language"`
		Tags        []string  `json:"tags"`
		Published   bool      `json:"published"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	publicArticleSummaryOut struct {
		ID          uuid.UUID `json:"id"`
		Title       string    `json:"title"`
		Slug        string    `json:"slug"`
		Summary     string    `json:"summary"`
		ReadingTime int       `json:"readingTime"`
		Level       string    `json:"level"`
		Language    string    `json:"language"`
		Tags        []string  `json:"tags"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	trackOut struct {
		ID            uuid.UUID `json:"id"`
		Title         string    `json:"title"`
		Mood          string    `json:"mood"`
		Genre         string    `json:"genre"`
		Duration      int       `json:"duration"`
		AudioURL      string    `json:"audioUrl"`
		IsAIGenerated bool      `json:"isAiGenerated"`
		IsFree        bool      `json:"isFree"`
		CreatedAt     time.Time `json:"createdAt"`
	}

	itemOut[T any] struct {
		Item T `json:"item"`
	}

	itemsOut[T any] struct {
		Items []T `json:"items"`
	}

	deletedOut struct {
		Deleted bool `json:"deleted"`
	}
)

func toCategoryOut(c domain.Category) categoryOut {
	return categoryOut{
		ID:          c.ID.UUID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Order:       c.Order,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toArticleOut(a domain.Article, withContent bool) articleOut {
	out := articleOut{
		ID:          a.ID.UUID,
		CategoryID:  a.CategoryID.UUID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		ReadingTime: a.ReadingTime,
		Level:       string(a.Level),
		Language:    a.Language,
		Tags:        a.Tags,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if withContent {
		out.Content = &a.Content
	}

	return out
}

func toPublicArticleSummaryOut(a domain.Article) publicArticleSummaryOut {
	out := publicArticleSummaryOut{
		ID:          a.ID.UUID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		ReadingTime: a.ReadingTime,
		Level:       string(a.Level),
		Language:    a.Language,
		Tags:        a.Tags,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}

	return out
}

func toTrackOut(t domain.Track) trackOut {
	return trackOut{
		ID:            t.ID.UUID,
		Title:         t.Title,
		Mood:          string(t.Mood),
		Genre:         string(t.Genre),
		Duration:      t.Duration,
		AudioURL:      t.AudioURL,
		IsAIGenerated: t.IsAIGenerated,
		IsFree:        t.IsFree,
		CreatedAt:     t.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}

	return result
}

func toCategoriesOut(categories []domain.Category) itemsOut[categoryOut] {
	return itemsOut[categoryOut]{Items: mapSlice(categories, toCategoryOut)}
}

func toArticleSummariesOut(articles []domain.Article) itemsOut[articleOut] {
	return itemsOut[articleOut]{Items: mapSlice(articles, func(a domain.Article) articleOut {
		return toArticleOut(a, false)
	})}
}

// toPublicArticleSummariesOut hides category and publication state from public listings.
func toPublicArticleSummariesOut(articles []domain.Article) itemsOut[publicArticleSummaryOut] {
	return itemsOut[publicArticleSummaryOut]{Items: mapSlice(articles, toPublicArticleSummaryOut)}
}

func toTracksOut(tracks []domain.Track) itemsOut[trackOut] {
	return itemsOut[trackOut]{Items: mapSlice(tracks, toTrackOut)}
}
