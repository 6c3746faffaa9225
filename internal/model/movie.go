package model

// Movie 电影。HTTP 接口只读，数据由 cmd/seed 导入
type Movie struct {
	ID          int    `gorm:"primaryKey"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"size:255"`
	Trailer     string `gorm:"size:255"`
	Year        int
	Rating      float64
	GenreID     *int      `gorm:"index"`
	Genre       *Genre    `gorm:"foreignKey:GenreID"`
	DirectorID  *int      `gorm:"index"`
	Director    *Director `gorm:"foreignKey:DirectorID"`
}

func (Movie) TableName() string {
	return "movie"
}
