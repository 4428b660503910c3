package types

import "strconv"

// ------------------------------
// Core Domain Entities
// ------------------------------

// WorkshopItem is a published workshop file in the detail shape returned by
// GetPublishedFileDetails. File sizes travel as decimal strings in this
// shape.
type WorkshopItem struct {
	Result          int    `json:"result"`
	PublishedFileID string `json:"publishedfileid"`
	Creator         string `json:"creator"`
	CreatorAppID    uint32 `json:"creator_app_id"`
	ConsumerAppID   uint32 `json:"consumer_app_id"`
	Filename        string `json:"filename"`
	FileSize        string `json:"file_size"`
	FileURL         string `json:"file_url,omitempty"`
	PreviewURL      string `json:"preview_url"`
	HContentFile    string `json:"hcontent_file"`
	HContentPreview string `json:"hcontent_preview"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TimeCreated     int64  `json:"time_created"`
	TimeUpdated     int64  `json:"time_updated"`
	Subscriptions   uint32 `json:"subscriptions"`
	Favorited       uint32 `json:"favorited"`
	Views           uint32 `json:"views"`
	Tags            []Tag  `json:"tags"`
	Visibility      uint8  `json:"visibility"`
}

// Tag is a single workshop tag label.
type Tag struct {
	Tag string `json:"tag"`
}

func (w WorkshopItem) String() string {
	return w.Title + " - " + w.PublishedFileID
}

// SearchItem is the same published file in the shape QueryFiles returns:
// the size is numeric and the description key differs.
type SearchItem struct {
	Result          int    `json:"result"`
	PublishedFileID string `json:"publishedfileid"`
	Creator         string `json:"creator"`
	CreatorAppID    uint32 `json:"creator_appid"`
	ConsumerAppID   uint32 `json:"consumer_appid"`
	Filename        string `json:"filename"`
	FileSize        int64  `json:"file_size"`
	FileURL         string `json:"file_url,omitempty"`
	PreviewURL      string `json:"preview_url"`
	HContentFile    string `json:"hcontent_file"`
	HContentPreview string `json:"hcontent_preview"`
	Title           string `json:"title"`
	FileDescription string `json:"file_description"`
	TimeCreated     int64  `json:"time_created"`
	TimeUpdated     int64  `json:"time_updated"`
	Subscriptions   uint32 `json:"subscriptions"`
	Favorited       uint32 `json:"favorited"`
	Views           uint32 `json:"views"`
	Tags            []Tag  `json:"tags"`
	Visibility      uint8  `json:"visibility"`
}

// SearchItem converts the detail shape to the search shape. The size string
// canonicalizes through int64; a malformed size becomes 0.
func (w WorkshopItem) SearchItem() SearchItem {
	size, _ := strconv.ParseInt(w.FileSize, 10, 64)
	return SearchItem{
		Result:          w.Result,
		PublishedFileID: w.PublishedFileID,
		Creator:         w.Creator,
		CreatorAppID:    w.CreatorAppID,
		ConsumerAppID:   w.ConsumerAppID,
		Filename:        w.Filename,
		FileSize:        size,
		FileURL:         w.FileURL,
		PreviewURL:      w.PreviewURL,
		HContentFile:    w.HContentFile,
		HContentPreview: w.HContentPreview,
		Title:           w.Title,
		FileDescription: w.Description,
		TimeCreated:     w.TimeCreated,
		TimeUpdated:     w.TimeUpdated,
		Subscriptions:   w.Subscriptions,
		Favorited:       w.Favorited,
		Views:           w.Views,
		Tags:            w.Tags,
		Visibility:      w.Visibility,
	}
}

// WorkshopItem converts the search shape back to the detail shape.
func (s SearchItem) WorkshopItem() WorkshopItem {
	return WorkshopItem{
		Result:          s.Result,
		PublishedFileID: s.PublishedFileID,
		Creator:         s.Creator,
		CreatorAppID:    s.CreatorAppID,
		ConsumerAppID:   s.ConsumerAppID,
		Filename:        s.Filename,
		FileSize:        strconv.FormatInt(s.FileSize, 10),
		FileURL:         s.FileURL,
		PreviewURL:      s.PreviewURL,
		HContentFile:    s.HContentFile,
		HContentPreview: s.HContentPreview,
		Title:           s.Title,
		Description:     s.FileDescription,
		TimeCreated:     s.TimeCreated,
		TimeUpdated:     s.TimeUpdated,
		Subscriptions:   s.Subscriptions,
		Favorited:       s.Favorited,
		Views:           s.Views,
		Tags:            s.Tags,
		Visibility:      s.Visibility,
	}
}
