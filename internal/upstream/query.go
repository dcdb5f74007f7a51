package upstream

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BuildQuery turns a parameter map into url.Values, emitting only the
// parameters that carry a value. Nil pointers, empty strings and zero
// pagination values never reach the wire.
func BuildQuery(params map[string]any) url.Values {
	q := url.Values{}
	for key, v := range params {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t != "" {
				q.Set(key, t)
			}
		case *string:
			if t != nil && *t != "" {
				q.Set(key, *t)
			}
		case int:
			if t != 0 {
				q.Set(key, fmt.Sprintf("%d", t))
			}
		case int64:
			if t != 0 {
				q.Set(key, fmt.Sprintf("%d", t))
			}
		case float64:
			if t != 0 {
				q.Set(key, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), "."))
			}
		case bool:
			q.Set(key, fmt.Sprintf("%t", t))
		case *bool:
			if t != nil {
				q.Set(key, fmt.Sprintf("%t", *t))
			}
		default:
			q.Set(key, fmt.Sprintf("%v", t))
		}
	}
	return q
}

var searchFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// FoldSearch lowers a search term and strips Vietnamese diacritics so
// "Điện Máy" folds to "dien may", the form the backend's search index
// expects.
func FoldSearch(s string) string {
	folded, _, err := transform.String(searchFolder, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return strings.ToLower(strings.TrimSpace(folded))
}
