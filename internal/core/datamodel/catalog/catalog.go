package catalog

import "time"

type Publisher struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	Country     string    `gorm:"column:country"`
	FoundedYear int       `gorm:"column:founded_year"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type Universe struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	PublisherID int64     `gorm:"column:publisher_id"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type Creator struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Role      string    `gorm:"column:role"`
	Bio       string    `gorm:"column:bio"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Series is a comic run: a titled sequence of issues within a universe.
type Series struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	PublisherID int64     `gorm:"column:publisher_id"`
	UniverseID  int64     `gorm:"column:universe_id"`
	StartYear   int       `gorm:"column:start_year"`
	EndYear     *int      `gorm:"column:end_year"`
	IssueCount  int       `gorm:"column:issue_count"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Series) TableName() string {
	return "series"
}

type Comic struct {
	ID          int64      `gorm:"primaryKey"`
	Title       string     `gorm:"column:title;not null"`
	IssueNumber int        `gorm:"column:issue_number"`
	SeriesID    int64      `gorm:"column:series_id;index"`
	PublisherID int64      `gorm:"column:publisher_id;index"`
	UniverseID  int64      `gorm:"column:universe_id"`
	CoverDate   *time.Time `gorm:"column:cover_date"`
	Synopsis    string     `gorm:"column:synopsis"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

type ComicCreator struct {
	ComicID   int64 `gorm:"column:comic_id;primaryKey"`
	CreatorID int64 `gorm:"column:creator_id;primaryKey"`
}

func (ComicCreator) TableName() string {
	return "comic_creators"
}

const (
	EditionFormatOmnibus = "omnibus"
	EditionFormatTPB     = "tpb"
)

// Edition is a collected edition of a series. Omnibus editions and trade
// paperbacks share the row shape and differ only in Format.
type Edition struct {
	ID          int64      `gorm:"primaryKey"`
	Title       string     `gorm:"column:title;not null"`
	Format      string     `gorm:"column:format;not null;index"`
	SeriesID    int64      `gorm:"column:series_id;index"`
	Volume      int        `gorm:"column:volume"`
	ISBN        string     `gorm:"column:isbn;uniqueIndex"`
	PageCount   int        `gorm:"column:page_count"`
	ReleaseDate *time.Time `gorm:"column:release_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
