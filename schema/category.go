package schema

import "time"

// Category is a mod category or, when IsClass is set, a top level class.
// Classes and parents are referenced by id.
type Category struct {
	ID           int       `json:"id"`
	GameID       int       `json:"gameId"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	URL          string    `json:"url"`
	IconURL      string    `json:"iconUrl"`
	DateModified time.Time `json:"dateModified"`

	IsClass          *bool `json:"isClass,omitempty"`
	ClassID          *int  `json:"classId,omitempty"`
	ParentCategoryID *int  `json:"parentCategoryId,omitempty"`
	DisplayIndex     *int  `json:"displayIndex,omitempty"`
}
