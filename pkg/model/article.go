package model

import "time"

// Article represents a published news article.
//
// OwnerID references the reporter account that created the article. The
// reference is intentionally not cascading: revoking or deleting the owner
// leaves the article in place with a dangling owner id, matching the
// platform's retention policy.
type Article struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Title      string    `gorm:"column:title;not null"`
	Content    string    `gorm:"column:content;not null"`
	OwnerID    int64     `gorm:"column:owner_id;not null"`
	CoverImage string    `gorm:"column:cover_image"`
	Category   string    `gorm:"column:category"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Article) TableName() string {
	return "articles"
}
