// Package models defines the records flowing through the news pipeline.
package models

// Article is one normalized news record extracted from an upstream
// response. Optional fields are pointers: nil preserves "absent or null"
// distinctly from an empty string, which matters for export and display
// decisions.
type Article struct {
	Title       string  `json:"title"`
	SourceName  string  `json:"source"`
	SourceID    *string `json:"source_id,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"url_to_image,omitempty"`
	PublishedAt string  `json:"publishedAt"`
	Content     *string `json:"content,omitempty"`
}

// ArticleFromRaw maps one raw article object to an Article. Every field is
// get-or-default: strings default to "", optional fields to nil, and a
// source that is missing or not an object behaves like an empty one. The
// mapping never fails.
func ArticleFromRaw(obj map[string]any) Article {
	source, _ := obj["source"].(map[string]any)

	return Article{
		Title:       stringField(obj, "title"),
		SourceName:  stringField(source, "name"),
		SourceID:    optionalField(source, "id"),
		Author:      optionalField(obj, "author"),
		Description: optionalField(obj, "description"),
		URL:         stringField(obj, "url"),
		ImageURL:    optionalField(obj, "urlToImage"),
		PublishedAt: stringField(obj, "publishedAt"),
		Content:     optionalField(obj, "content"),
	}
}

// stringField returns the string value at key, or "" when the key is
// missing or holds a non-string.
func stringField(obj map[string]any, key string) string {
	value, _ := obj[key].(string)

	return value
}

// optionalField returns a pointer to the string value at key, or nil when
// the key is missing, null, or holds a non-string.
func optionalField(obj map[string]any, key string) *string {
	value, ok := obj[key].(string)
	if !ok {
		return nil
	}

	return &value
}
