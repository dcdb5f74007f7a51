package upstream

// List is the stable shape every paginated endpoint resolves to, no matter
// which envelope the backend wrapped the payload in.
type List struct {
	Items []Record
	Total int
	Page  int
	Limit int
}

// UnwrapList hides backend inconsistency in list responses. Over time the
// backend has returned bare arrays, {data: [...]}, paged objects
// {data: {rows, count, page, limit}} and {rows, count} at the top level,
// and some endpoints key the array by resource name instead of "rows".
// The probing order below is a compatibility shim; call sites must not care
// which shape they got. page and limit echo the original request when the
// response omits them; names are extra top-level array fields to try.
func UnwrapList(raw any, page, limit int, names ...string) List {
	if arr, ok := raw.([]any); ok {
		return List{
			Items: toRecords(arr),
			Total: len(arr),
			Page:  1,
			Limit: limit,
		}
	}

	rec := AsRecord(raw)

	if paged := rec.Child("data"); paged != nil {
		if rows, ok := paged.Lookup("rows"); ok {
			if arr, ok := rows.([]any); ok {
				return pagedList(paged, arr, page, limit)
			}
		}
	}
	if rows, ok := rec.Lookup("rows"); ok {
		if arr, ok := rows.([]any); ok {
			return pagedList(rec, arr, page, limit)
		}
	}
	if data, ok := rec.Lookup("data"); ok {
		if arr, ok := data.([]any); ok {
			items := toRecords(arr)
			return List{
				Items: items,
				Total: int(rec.IntOr(int64(len(arr)), "count", "total")),
				Page:  int(rec.IntOr(int64(orDefault(page, 1)), "page")),
				Limit: int(rec.IntOr(int64(limit), "limit")),
			}
		}
	}
	for _, name := range names {
		if v, ok := rec.Lookup(name); ok {
			if arr, ok := v.([]any); ok {
				return pagedList(rec, arr, page, limit)
			}
		}
	}

	return List{Total: 0, Page: orDefault(page, 1), Limit: limit}
}

func pagedList(meta Record, arr []any, page, limit int) List {
	return List{
		Items: toRecords(arr),
		Total: int(meta.IntOr(int64(len(arr)), "count", "total")),
		Page:  int(meta.IntOr(int64(orDefault(page, 1)), "page")),
		Limit: int(meta.IntOr(int64(limit), "limit")),
	}
}

// UnwrapRecord extracts a single entity from a response whose nesting
// varies per endpoint: the entity may sit at the top level, under "data",
// under "data.data", or under a resource-specific key ("customer"). Each
// candidate is tried in order; a candidate counts only when it looks like
// an entity (has at least one field).
func UnwrapRecord(raw any, names ...string) Record {
	rec := AsRecord(raw)
	candidates := []Record{rec.Child("data.data")}
	for _, name := range names {
		candidates = append(candidates, rec.Child("data."+name), rec.Child(name))
	}
	candidates = append(candidates, rec.Child("data"))
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return rec
}

func toRecords(arr []any) []Record {
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		out = append(out, AsRecord(item))
	}
	return out
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
