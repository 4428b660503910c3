package api

import (
	"context"
	"net/url"

	"github.com/steamwebapi/workshop/internal/types"
)

// CollectionChildren returns the ordered child ids of a collection,
// suitable for feeding directly into PublishedFileDetails. ok is false,
// with no error, when fileID does not name a collection.
func CollectionChildren(ctx context.Context, hc HTTPClient, baseURL, fileID string) (children []string, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := types.ValidatePublishedFileID(fileID); err != nil {
		return nil, false, err
	}
	form := url.Values{}
	form.Set("collectioncount", "1")
	form.Set("publishedfileids[0]", fileID)

	var env types.CollectionResponse
	if err := postForm(ctx, hc, "get collection details", baseURL+"/ISteamRemoteStorage/GetCollectionDetails/v1/", form, &env); err != nil {
		return nil, false, err
	}

	if env.Response.ResultCount == 0 || len(env.Response.CollectionDetails) == 0 {
		return nil, false, nil
	}
	detail := env.Response.CollectionDetails[0]
	children = make([]string, 0, len(detail.Children))
	for _, child := range detail.Children {
		children = append(children, child.PublishedFileID)
	}
	return children, true, nil
}
