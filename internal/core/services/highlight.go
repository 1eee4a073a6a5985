package services

import "strings"

// Highlight finds the first case-insensitive occurrence of query inside
// title and returns it as it appears in the title, original casing
// preserved. When the title does not contain the query (the record matched
// through another field) the result is empty. Highlights are advisory for
// display emphasis and carry no scoring weight.
func Highlight(title, query string) []string {
	query = strings.TrimSpace(query)
	if title == "" || query == "" {
		return []string{}
	}

	idx := strings.Index(strings.ToLower(title), strings.ToLower(query))
	if idx < 0 {
		return []string{}
	}

	end := idx + len(query)
	if end > len(title) {
		end = len(title)
	}
	return []string{title[idx:end]}
}
