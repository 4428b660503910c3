package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steamwebapi/workshop/internal/types"
)

func TestCollectionChildren_OrderedChildren(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/ISteamRemoteStorage/GetCollectionDetails/v1/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("collectioncount"); got != "1" {
			t.Fatalf("collectioncount = %q", got)
		}
		if got := r.PostForm.Get("publishedfileids[0]"); got != "2855027013" {
			t.Fatalf("publishedfileids[0] = %q", got)
		}
		var env types.CollectionResponse
		env.Response.Result = 1
		env.Response.ResultCount = 1
		env.Response.CollectionDetails = []types.CollectionDetail{{
			PublishedFileID: "2855027013",
			Result:          1,
			Children: []types.CollectionChild{
				{PublishedFileID: "111", SortOrder: 0},
				{PublishedFileID: "222", SortOrder: 1},
				{PublishedFileID: "333", SortOrder: 2},
			},
		}}
		_ = json.NewEncoder(w).Encode(&env)
	}))
	defer srv.Close()

	children, ok, err := CollectionChildren(context.Background(), srv.Client(), srv.URL, "2855027013")
	if err != nil {
		t.Fatalf("CollectionChildren: %v", err)
	}
	if !ok {
		t.Fatalf("expected a collection")
	}
	want := []string{"111", "222", "333"}
	if len(children) != len(want) {
		t.Fatalf("children = %v", children)
	}
	for i, id := range want {
		if children[i] != id {
			t.Fatalf("child order not preserved: %v", children)
		}
	}
}

func TestCollectionChildren_NotACollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env types.CollectionResponse
		env.Response.Result = 1
		env.Response.ResultCount = 0
		_ = json.NewEncoder(w).Encode(&env)
	}))
	defer srv.Close()

	children, ok, err := CollectionChildren(context.Background(), srv.Client(), srv.URL, "121090376")
	if err != nil {
		t.Fatalf("not-a-collection must not be an error, got %v", err)
	}
	if ok || children != nil {
		t.Fatalf("expected no children, got ok=%v children=%v", ok, children)
	}
}

func TestCollectionChildren_BadIDFailsBeforeNetwork(t *testing.T) {
	hc := &countingClient{}
	_, _, err := CollectionChildren(context.Background(), hc, "http://unused.invalid", "nope")
	var bad *types.BadRequestError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadRequestError, got %v", err)
	}
	if hc.calls != 0 {
		t.Fatalf("no network call should be made, saw %d", hc.calls)
	}
}
