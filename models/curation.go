package models

import (
	"time"
)

// Curation is a shared link post. LikeCount is a cached counter kept in sync
// with the like_curations rows inside the same transaction.
type Curation struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string    `json:"title" gorm:"size:255;not null" binding:"required"`
	Link         string    `json:"link"`
	PreviewImage string    `json:"previewImage" gorm:"column:preview_image"`
	LikeCount    int64     `json:"likeCount" gorm:"column:like_count;default:0"`
	UserID       string    `json:"userId" gorm:"column:user_id;index"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CategoryID   string    `json:"categoryId" gorm:"column:category_id"`
	Category     Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CurationDetail augments a curation with the viewer-relative flags.
type CurationDetail struct {
	Curation
	IsLiked bool `json:"isLiked"`
	IsSaved bool `json:"isSaved"`
}

func (Curation) TableName() string {
	return "curations"
}
