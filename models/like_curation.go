package models

import (
	"time"
)

// LikeCuration records that a user likes a curation, at most once per pair.
type LikeCuration struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_like_user_curation"`
	CurationID string    `json:"curationId" gorm:"column:curation_id;uniqueIndex:idx_like_user_curation"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (LikeCuration) TableName() string {
	return "like_curations"
}
