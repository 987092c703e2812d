package models

// RawResponse holds an upstream response document in two forms: the decoded
// object for field access and the bytes exactly as loaded. Exports work on
// the bytes, so fields unknown to the Article mapping are never lost.
type RawResponse struct {
	Doc map[string]any
	Raw []byte
}

// Status returns the top-level status value, or "" when absent.
func (r *RawResponse) Status() string {
	return stringField(r.Doc, "status")
}

// TotalResults returns the top-level totalResults value, or 0 when absent.
func (r *RawResponse) TotalResults() int {
	value, _ := r.Doc["totalResults"].(float64)

	return int(value)
}

// RawArticles returns the articles array in upstream order. Entries that
// are not objects behave as empty objects, the same rule the mapping
// applies to a malformed source.
func (r *RawResponse) RawArticles() []map[string]any {
	list, _ := r.Doc["articles"].([]any)

	articles := make([]map[string]any, 0, len(list))

	for _, item := range list {
		obj, _ := item.(map[string]any)
		if obj == nil {
			obj = map[string]any{}
		}

		articles = append(articles, obj)
	}

	return articles
}

// Articles maps every raw article to its normalized record, preserving
// upstream order.
func (r *RawResponse) Articles() []Article {
	raw := r.RawArticles()

	articles := make([]Article, 0, len(raw))
	for _, obj := range raw {
		articles = append(articles, ArticleFromRaw(obj))
	}

	return articles
}
