// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Guide is a user-authored hero build guide. Only the fields needed for
// ownership checks and editing are modelled here.
type Guide struct {
	GuideID  int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Guide model.
func (g Guide) TableName() string {
	return "guides"
}

// GuideFields is a partial update of a [Guide].
type GuideFields struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update carries no field at all.
func (f GuideFields) IsEmpty() bool {
	return f.Title == nil && f.Content == nil
}
