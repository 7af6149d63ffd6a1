package domain

import "time"

// 內容類型
const (
	ContentAudio    = "audio"
	ContentImage    = "image"
	ContentVideo    = "video"
	ContentDocument = "document"
)

// ContentTypes 依照網站篩選器的順序
var ContentTypes = []string{ContentAudio, ContentImage, ContentVideo, ContentDocument}

type Creator struct {
	Name    string `json:"name"`
	Address string `json:"address"` // 0x 開頭, EIP-55 checksum
}

type RecordStats struct {
	Revenue   float64 `json:"revenue"`
	Sightings int     `json:"sightings"`
	Licenses  int     `json:"licenses"`
}

type RecordMetadata struct {
	ContentType string `json:"contentType"`
}

// ContentRecord 即網站上的 UCR
type ContentRecord struct {
	ID          string         `json:"id"`
	TokenID     int            `json:"tokenId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Creator     Creator        `json:"creator"`
	Stats       RecordStats    `json:"stats"`
	Metadata    RecordMetadata `json:"metadata"`
	Tags        []string       `json:"tags"`
	ImageURL    string         `json:"imageUrl"`
	CreatedAt   time.Time      `json:"createdAt"`
}
