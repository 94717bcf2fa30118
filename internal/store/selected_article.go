package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-news-kiosk/models"
)

type selectedArticleStore struct {
	kv KeyValueStore
}

// NewSelectedArticleStore constructs a [SelectedArticleStore] keeping the
// article under [KeySelectedArticle]. The last Set wins.
func NewSelectedArticleStore(kv KeyValueStore) SelectedArticleStore {
	return &selectedArticleStore{kv: kv}
}

func (s *selectedArticleStore) Set(ctx context.Context, article models.Article) error {
	return setJSON(ctx, s.kv, KeySelectedArticle, article)
}

func (s *selectedArticleStore) Get(ctx context.Context) (models.Article, error) {
	article, err := getJSON[models.Article](ctx, s.kv, KeySelectedArticle)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Article{}, ErrNoArticleSelected
	}
	return article, err
}

func (s *selectedArticleStore) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, KeySelectedArticle)
}
