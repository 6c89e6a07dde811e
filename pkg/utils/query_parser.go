package utils

import (
	"net/url"
	"strconv"
	"strings"
)

type QueryParams struct {
	Filters map[string]string
	Search  string
	Limit   uint64
	Offset  uint64
}

// ParseQuery разбирает параметры вида filter[status]=DONE&search=...&limit=50&offset=0.
// Параметры page/sort намеренно не поддерживаются: порядок очереди фиксирован,
// а страница выражается смещением.
func ParseQuery(query url.Values) QueryParams {
	params := QueryParams{
		Filters: make(map[string]string),
		Limit:   50,
		Offset:  0,
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			params.Filters[filterKey] = values[0]
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			params.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			params.Offset = o
		}
	}
	if search := query.Get("search"); search != "" {
		params.Search = search
	}

	return params
}
