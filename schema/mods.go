package schema

import "time"

// Mod is a project in the catalog.
type Mod struct {
	ID                int         `json:"id"`
	GameID            int         `json:"gameId"`
	Name              string      `json:"name"`
	Slug              string      `json:"slug"`
	Links             ModLinks    `json:"links"`
	Summary           string      `json:"summary"`
	Status            ModStatus   `json:"status"`
	DownloadCount     int64       `json:"downloadCount"`
	IsFeatured        bool        `json:"isFeatured"`
	PrimaryCategoryID int         `json:"primaryCategoryId"`
	Categories        []Category  `json:"categories"`
	ClassID           int         `json:"classId"`
	Authors           []ModAuthor `json:"authors"`
	Logo              *ModAsset   `json:"logo"`
	Screenshots       []ModAsset  `json:"screenshots"`
	MainFileID        int         `json:"mainFileId"`

	LatestFiles                   []File      `json:"latestFiles"`
	LatestFilesIndexes            []FileIndex `json:"latestFilesIndexes"`
	LatestEarlyAccessFilesIndexes []FileIndex `json:"latestEarlyAccessFilesIndexes"`

	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
	DateReleased time.Time `json:"dateReleased"`

	AllowModDistribution *bool `json:"allowModDistribution,omitempty"`
	GamePopularityRank   int   `json:"gamePopularityRank"`

	// IsAvailable is false for experimental or deleted mods and for mods with only alpha files.
	IsAvailable   bool     `json:"isAvailable"`
	ThumbsUpCount int      `json:"thumbsUpCount"`
	Rating        *float64 `json:"rating,omitempty"`
}

// ModLinks contains URLs associated with a mod
type ModLinks struct {
	WebsiteURL *string `json:"websiteUrl,omitempty"`
	WikiURL    *string `json:"wikiUrl,omitempty"`
	IssuesURL  *string `json:"issuesUrl,omitempty"`
	SourceURL  *string `json:"sourceUrl,omitempty"`
}

// ModAuthor is a member credited on a mod.
type ModAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ModAsset represents an image asset (logo, screenshot)
type ModAsset struct {
	ID           int    `json:"id"`
	ModID        int    `json:"modId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	URL          string `json:"url"`
}
