package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/steamwebapi/workshop/internal/types"
)

// CanSubscribe reports whether the user behind the API key may subscribe
// to the published file. A missing or mis-shaped response field reads as
// false: the check never claims subscribability on ambiguous data.
func CanSubscribe(ctx context.Context, hc HTTPClient, baseURL, apiKey, fileID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := types.ValidatePublishedFileID(fileID); err != nil {
		return false, err
	}
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("publishedfileid", fileID)

	var env types.CanSubscribeResponse
	if err := getJSON(ctx, hc, "can subscribe", baseURL+"/IPublishedFileService/CanSubscribe/v1/", q, &env); err != nil {
		return false, err
	}

	if len(env.Response.CanSubscribe) == 0 {
		return false, nil
	}
	var can bool
	if err := json.Unmarshal(env.Response.CanSubscribe, &can); err != nil {
		return false, nil
	}
	return can, nil
}

// Subscribe adds the published file to the keyed user's subscriptions.
// Success is the HTTP status alone; the body is ignored.
func Subscribe(ctx context.Context, hc HTTPClient, baseURL, apiKey, fileID string, notify bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidatePublishedFileID(fileID); err != nil {
		return err
	}
	form := url.Values{}
	form.Set("key", apiKey)
	form.Set("publishedfileid", fileID)
	if notify {
		form.Set("notifyclient", "1")
	} else {
		form.Set("notifyclient", "0")
	}
	return postForm(ctx, hc, "subscribe", baseURL+"/IPublishedFileService/Subscribe/v1/", form, nil)
}

// Unsubscribe removes the published file from the keyed user's
// subscriptions. Success is the HTTP status alone.
func Unsubscribe(ctx context.Context, hc HTTPClient, baseURL, apiKey, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidatePublishedFileID(fileID); err != nil {
		return err
	}
	form := url.Values{}
	form.Set("key", apiKey)
	form.Set("publishedfileid", fileID)
	return postForm(ctx, hc, "unsubscribe", baseURL+"/IPublishedFileService/Unsubscribe/v1/", form, nil)
}
