package models

import (
	"time"
)

// CurationStorage records that a user bookmarked a curation, at most once per pair.
type CurationStorage struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_storage_user_curation"`
	CurationID string    `json:"curationId" gorm:"column:curation_id;uniqueIndex:idx_storage_user_curation"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (CurationStorage) TableName() string {
	return "curation_storages"
}
