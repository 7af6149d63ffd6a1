package domain

import "time"

type Spotter struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Location struct {
	Name string `json:"name"`
}

// Sighting 代表 UCR 在外部被偵測到一次
type Sighting struct {
	ID         string    `json:"id"`
	UCRID      string    `json:"ucrId"` // 必須指向同一批產生的 ContentRecord
	Timestamp  time.Time `json:"timestamp"`
	Reward     float64   `json:"reward"`
	Spotter    Spotter   `json:"spotter"`
	Location   Location  `json:"location"`
	Confidence int       `json:"confidence"` // 百分比
	Verified   bool      `json:"verified"`
}

// TitledSighting 儀表板用，附帶 UCR 標題
type TitledSighting struct {
	Sighting
	UCRTitle string `json:"ucrTitle"`
}
