package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/MKhiriev/go-news-kiosk/models"
)

// PlaceholderImageURL is shown for articles without media.
const PlaceholderImageURL = "https://placehold.co/440x293?text=No+Image"

// preferredImageFormat is the largest rendition the feed usually carries.
const preferredImageFormat = "mediumThreeByTwo440"

// AbstractPreviewLength is the abstract length shown on feed cards.
const AbstractPreviewLength = 150

// ImageURL picks the thumbnail of article: the preferred rendition of the
// first media entry, else its last rendition, else [PlaceholderImageURL].
func ImageURL(article models.Article) string {
	if len(article.Media) == 0 {
		return PlaceholderImageURL
	}

	metadata := article.Media[0].Metadata
	for _, m := range metadata {
		if m.Format == preferredImageFormat && m.URL != "" {
			return m.URL
		}
	}

	for i := len(metadata) - 1; i >= 0; i-- {
		if metadata[i].URL != "" {
			return metadata[i].URL
		}
	}

	return PlaceholderImageURL
}

// Truncate shortens text to max runes followed by "...". Text that already
// fits is returned unchanged.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max < 0 || len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// FilterByTitle keeps the articles whose title contains term, ignoring
// case. An empty or blank term keeps everything.
func FilterByTitle(articles []models.Article, term string) []models.Article {
	term = strings.TrimSpace(term)
	if term == "" {
		return articles
	}

	fold := cases.Fold()
	needle := fold.String(term)

	filtered := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if strings.Contains(fold.String(article.Title), needle) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}
