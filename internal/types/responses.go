package types

import "encoding/json"

// ------------------------------
// Wire Envelopes
// ------------------------------

// FileDetailsResponse wraps the GetPublishedFileDetails body.
type FileDetailsResponse struct {
	Response FileDetailsBody `json:"response"`
}

type FileDetailsBody struct {
	Result               int            `json:"result"`
	ResultCount          int            `json:"resultcount"`
	PublishedFileDetails []WorkshopItem `json:"publishedfiledetails"`
}

// CollectionResponse wraps the GetCollectionDetails body.
type CollectionResponse struct {
	Response CollectionBody `json:"response"`
}

type CollectionBody struct {
	Result            int                `json:"result"`
	ResultCount       int                `json:"resultcount"`
	CollectionDetails []CollectionDetail `json:"collectiondetails"`
}

type CollectionDetail struct {
	PublishedFileID string            `json:"publishedfileid"`
	Result          int               `json:"result"`
	Children        []CollectionChild `json:"children"`
}

type CollectionChild struct {
	PublishedFileID string `json:"publishedfileid"`
	SortOrder       int    `json:"sortorder"`
	FileType        int    `json:"filetype"`
}

// QueryFilesResponse wraps the QueryFiles body. A zero total means no
// matches; the details list may then be absent entirely.
type QueryFilesResponse struct {
	Response QueryFilesBody `json:"response"`
}

type QueryFilesBody struct {
	Total                int          `json:"total"`
	PublishedFileDetails []SearchItem `json:"publishedfiledetails"`
}

// CanSubscribeResponse wraps the CanSubscribe body. The flag is kept raw so
// a missing or mis-shaped field can read as false instead of failing the
// whole call.
type CanSubscribeResponse struct {
	Response struct {
		CanSubscribe json.RawMessage `json:"can_subscribe"`
	} `json:"response"`
}
