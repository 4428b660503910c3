package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/steamwebapi/workshop/internal/types"
)

// QueryFiles searches published files. Authorization is the caller's
// responsibility; apiKey may be empty when a proxy injects its own
// server-side. A zero upstream total yields an empty list, not an error.
// Results arrive in the search shape and are converted to the detail shape
// so both call families return the same type.
func QueryFiles(ctx context.Context, hc HTTPClient, baseURL, apiKey, query string, opts *types.SearchOptions) ([]types.WorkshopItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &types.SearchOptions{}
	}
	cursor := opts.Cursor
	if cursor == "" {
		cursor = "*"
	}
	appID := strconv.FormatUint(uint64(opts.AppID), 10)

	q := url.Values{}
	q.Set("page", "1")
	q.Set("numperpage", strconv.FormatUint(uint64(opts.Count), 10))
	q.Set("cursor", cursor)
	q.Set("search_text", query)
	q.Set("appid", appID)
	q.Set("creator_appid", appID)
	q.Set("return_metadata", "1")
	q.Set("key", apiKey)
	if rt := opts.RequiredTags; rt != nil {
		q.Set("requiredtags", strings.Join(rt.Tags, ","))
		if rt.MatchAll {
			q.Set("match_all_tags", "1")
		} else {
			q.Set("match_all_tags", "0")
		}
	}
	if len(opts.ExcludedTags) > 0 {
		q.Set("excludedtags", strings.Join(opts.ExcludedTags, ","))
	}

	var env types.QueryFilesResponse
	if err := getJSON(ctx, hc, "search items", baseURL+"/IPublishedFileService/QueryFiles/v1/", q, &env); err != nil {
		return nil, err
	}

	if env.Response.Total == 0 {
		return []types.WorkshopItem{}, nil
	}
	items := make([]types.WorkshopItem, 0, len(env.Response.PublishedFileDetails))
	for _, result := range env.Response.PublishedFileDetails {
		items = append(items, result.WorkshopItem())
	}
	return items, nil
}
