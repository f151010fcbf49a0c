// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a single user-authored feed entry. The json tags are the
// persisted blob layout; they must not change or existing stores become
// unreadable.
type Post struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Text     string    `json:"text"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Time     time.Time `json:"time"`
	Likes    int       `json:"likes"`
	// IsLiked is the like flag of the single implicit viewer. Two distinct
	// viewers sharing one store would overwrite each other's flag; known
	// limitation of the data model.
	IsLiked bool `json:"isLiked"`
}
