// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Article is a read-only record returned by the most-popular article feed.
// The storefront never mutates it; on purchase it is embedded verbatim into
// [Account.Owned].
type Article struct {
	ID            int64   `json:"id"`
	URL           string  `json:"url"`
	Source        string  `json:"source,omitempty"`
	Section       string  `json:"section"`
	Byline        string  `json:"byline,omitempty"`
	Title         string  `json:"title"`
	Abstract      string  `json:"abstract"`
	PublishedDate string  `json:"published_date"`
	Media         []Media `json:"media,omitempty"`
}

// Media is a media reference attached to an article (usually an image with
// several renditions).
type Media struct {
	Type     string          `json:"type"`
	Subtype  string          `json:"subtype,omitempty"`
	Caption  string          `json:"caption,omitempty"`
	Metadata []MediaMetadata `json:"media-metadata"`
}

// MediaMetadata is one rendition of a [Media] item.
type MediaMetadata struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Clone returns a deep copy of the article.
func (a Article) Clone() Article {
	out := a
	if a.Media != nil {
		out.Media = make([]Media, len(a.Media))
		for i, m := range a.Media {
			out.Media[i] = m
			if m.Metadata != nil {
				out.Media[i].Metadata = append([]MediaMetadata(nil), m.Metadata...)
			}
		}
	}
	return out
}

// FeedResponse is the envelope returned by the most-popular feed endpoint.
type FeedResponse struct {
	Status     string    `json:"status"`
	NumResults int       `json:"num_results"`
	Results    []Article `json:"results"`
}
