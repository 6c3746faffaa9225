package model

// ==================== 输出 ====================

// MovieView 电影的传输结构，字段顺序固定
type MovieView struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int    `json:"genre_id,omitempty"`    // 为空时不输出
	DirectorID  *int    `json:"director_id,omitempty"` // 为空时不输出
}

// NamedView 导演、类型共用的传输结构
type NamedView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DumpMovie 序列化单部电影
func DumpMovie(m *Movie) MovieView {
	return MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Trailer:     m.Trailer,
		Year:        m.Year,
		Rating:      m.Rating,
		GenreID:     m.GenreID,
		DirectorID:  m.DirectorID,
	}
}

// DumpMovies 序列化电影列表，保持原有顺序
func DumpMovies(movies []Movie) []MovieView {
	res := make([]MovieView, 0, len(movies))
	for i := range movies {
		res = append(res, DumpMovie(&movies[i]))
	}
	return res
}

func DumpDirector(d *Director) NamedView {
	return NamedView{ID: d.ID, Name: d.Name}
}

func DumpDirectors(directors []Director) []NamedView {
	res := make([]NamedView, 0, len(directors))
	for i := range directors {
		res = append(res, DumpDirector(&directors[i]))
	}
	return res
}

func DumpGenre(g *Genre) NamedView {
	return NamedView{ID: g.ID, Name: g.Name}
}

func DumpGenres(genres []Genre) []NamedView {
	res := make([]NamedView, 0, len(genres))
	for i := range genres {
		res = append(res, DumpGenre(&genres[i]))
	}
	return res
}

// ==================== 输入 ====================

// NamePayload 导演、类型的创建/更新请求体。
// 指针用于区分缺失字段与空字符串，缺失时校验失败而不是把 name 覆盖为空
type NamePayload struct {
	Name *string `json:"name" binding:"required,notblank,max=255"`
}

// NewDirector 由已校验的请求体构造导演
func (p NamePayload) NewDirector() *Director {
	return &Director{Name: *p.Name}
}

// NewGenre 由已校验的请求体构造类型
func (p NamePayload) NewGenre() *Genre {
	return &Genre{Name: *p.Name}
}
