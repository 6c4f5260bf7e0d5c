// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// bulkIncludeChunk is the maximum number of IDs sent in a single include=
// request. Bounds both query-string length and upstream load.
const bulkIncludeChunk = 100

// NormalizeIDs coerces raw string values into integer IDs, silently dropping
// anything that does not parse. Used wherever IDs arrive as text, such as
// the tag-id and group-id query parameters.
func NormalizeIDs(values []string) []int {
	var ids []int
	for _, v := range values {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// bulkFetchMap fetches resources by ID through batched include= requests
// and returns an ID-to-resource map.
//
// Input IDs may be duplicated or non-positive; they are deduplicated and
// invalid ones dropped. The empty set short-circuits without a network
// call. A failed chunk aborts the whole resolution: no partial results.
func bulkFetchMap[T any](ctx context.Context, c *Client, endpoint string, ids []int, fields []string, idOf func(T) int) (map[int]T, error) {
	idSet := make(map[int]struct{})
	for _, id := range ids {
		if id > 0 {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[int]T{}, nil
	}

	sorted := make([]int, 0, len(idSet))
	for id := range idSet {
		sorted = append(sorted, id)
	}
	sort.Ints(sorted)

	result := make(map[int]T, len(sorted))
	for start := 0; start < len(sorted); start += bulkIncludeChunk {
		end := min(start+bulkIncludeChunk, len(sorted))
		chunk := sorted[start:end]

		var items []T
		_, err := c.getJSON(ctx, endpoint, params{
			"per_page": len(chunk),
			"include":  chunk,
		}, false, fields, &items)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			if id := idOf(item); id > 0 {
				result[id] = item
			}
		}
	}
	return result, nil
}
