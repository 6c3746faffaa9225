package model

// Director 导演
type Director struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:255"`
}

func (Director) TableName() string {
	return "director"
}

// Genre 类型
type Genre struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:255"`
}

func (Genre) TableName() string {
	return "genre"
}
