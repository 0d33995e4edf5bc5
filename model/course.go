package model

type Course struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"unique; not null" json:"slug"`
	Title       string `gorm:"not null" json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
}
