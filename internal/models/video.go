package models

// ProcessedVideo is the normalized video record handed to presentation.
type ProcessedVideo struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	Duration     string   `json:"duration"`
	Views        string   `json:"views"`
	PublishedAt  string   `json:"publishedAt"`
	ChannelTitle string   `json:"channelTitle"`
	ChannelID    string   `json:"channelId"`
	Tags         []string `json:"tags,omitempty"`
	URL          string   `json:"url"`
}

// Thumbnail is one rendition of a video thumbnail.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails holds the renditions returned by the videos API.
// Standard and Maxres are only present on detail lookups.
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// VideoSnippet is the snippet part of a search or detail response.
type VideoSnippet struct {
	PublishedAt  string     `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
	Tags         []string   `json:"tags,omitempty"`
}

// SearchResultID is the compound id of a search result item.
type SearchResultID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// VideoSearchItem is one item of a /search response.
type VideoSearchItem struct {
	ID      SearchResultID `json:"id"`
	Snippet VideoSnippet   `json:"snippet"`
}

// VideoStatistics is the statistics part of a /videos response.
type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// VideoContentDetails is the contentDetails part of a /videos response.
type VideoContentDetails struct {
	Duration   string `json:"duration"`
	Definition string `json:"definition"`
	Caption    string `json:"caption"`
}

// VideoDetailItem is one item of a /videos response.
type VideoDetailItem struct {
	ID             string              `json:"id"`
	Snippet        VideoSnippet        `json:"snippet"`
	Statistics     VideoStatistics     `json:"statistics"`
	ContentDetails VideoContentDetails `json:"contentDetails"`
}

// VideoSearchResponse is the body of a /search response.
type VideoSearchResponse struct {
	Items []VideoSearchItem `json:"items"`
}

// VideoDetailResponse is the body of a /videos response.
type VideoDetailResponse struct {
	Items []VideoDetailItem `json:"items"`
}
