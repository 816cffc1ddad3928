package models

import (
	"time"
)

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FollowerID  string    `json:"followerId" gorm:"column:follower_id;uniqueIndex:idx_follower_following"`
	FollowingID string    `json:"followingId" gorm:"column:following_id;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowingInfo is one row of the followers/followings listings.
type FollowingInfo struct {
	UserID       string   `json:"userId"`
	Nickname     string   `json:"nickname"`
	ProfileImage string   `json:"profileImage"`
	Categories   []string `json:"categories"`
	IsFollow     bool     `json:"isFollow"`
}

func (Follow) TableName() string {
	return "follows"
}
