package schema

import "time"

// Game is a game supported by the catalog.
type Game struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	DateModified time.Time     `json:"dateModified"`
	Assets       GameAssets    `json:"assets"`
	Status       CoreStatus    `json:"status"`
	APIStatus    CoreAPIStatus `json:"apiStatus"`
}

// GameAssets contains image assets for a game. Any of them may be missing.
type GameAssets struct {
	IconURL  *string `json:"iconUrl,omitempty"`
	TileURL  *string `json:"tileUrl,omitempty"`
	CoverURL *string `json:"coverUrl,omitempty"`
}

// GameVersionsByType lists the version strings of one version type.
type GameVersionsByType struct {
	Type     int      `json:"type"`
	Versions []string `json:"versions"`
}

// GameVersionType groups game versions, e.g. 517 for wow_retail.
type GameVersionType struct {
	ID         int                   `json:"id"`
	GameID     int                   `json:"gameId"`
	Name       string                `json:"name"`
	Slug       string                `json:"slug"`
	IsSyncable bool                  `json:"isSyncable"`
	Status     GameVersionTypeStatus `json:"status"`
}
