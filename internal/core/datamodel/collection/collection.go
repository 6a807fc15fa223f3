package collection

import "time"

const (
	StatusUnread  = "unread"
	StatusReading = "reading"
	StatusRead    = "read"
)

// Entry is one comic in a user's personal collection. A user holds at most
// one entry per comic.
type Entry struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_comic"`
	ComicID   int64     `gorm:"column:comic_id;not null;uniqueIndex:idx_user_comic"`
	Status    string    `gorm:"column:status;not null;default:unread"`
	Rating    *int      `gorm:"column:rating"`
	Notes     string    `gorm:"column:notes"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string {
	return "collection_entries"
}

func ValidStatus(s string) bool {
	switch s {
	case StatusUnread, StatusReading, StatusRead:
		return true
	}
	return false
}
