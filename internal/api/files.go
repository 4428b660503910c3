package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/steamwebapi/workshop/internal/types"
)

// PublishedFileDetails fetches the detail shape for each published file id.
// Every id is validated as a uint64 before any request parameters are
// built. Entries whose result code is not success (deleted, banned, or
// missing files) are dropped from the returned list rather than reported
// as partial errors. Steam accepts at most 100 ids per call; larger
// batches fail upstream.
func PublishedFileDetails(ctx context.Context, hc HTTPClient, baseURL string, fileIDs []string) ([]types.WorkshopItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePublishedFileIDs(fileIDs); err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("itemcount", strconv.Itoa(len(fileIDs)))
	for i, id := range fileIDs {
		form.Set(fmt.Sprintf("publishedfileids[%d]", i), id)
	}

	var env types.FileDetailsResponse
	if err := postForm(ctx, hc, "get published file details", baseURL+"/ISteamRemoteStorage/GetPublishedFileDetails/v1/", form, &env); err != nil {
		return nil, err
	}

	items := make([]types.WorkshopItem, 0, len(env.Response.PublishedFileDetails))
	dropped := 0
	for _, item := range env.Response.PublishedFileDetails {
		if item.Result != resultOK {
			dropped++
			continue
		}
		items = append(items, item)
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("returned", len(items)).Msg("dropped workshop entries without a success result")
	}
	return items, nil
}
