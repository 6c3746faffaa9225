package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/model"
	"github.com/user/moviecatalog/internal/repository"
)

var errStore = errors.New("connection refused")

type fakeMovies struct {
	movies []model.Movie
	err    error
}

func (f *fakeMovies) List(_ context.Context, flt repository.MovieFilter) ([]model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var res []model.Movie
	for _, m := range f.movies {
		if flt.DirectorID != nil && (m.DirectorID == nil || *m.DirectorID != *flt.DirectorID) {
			continue
		}
		if flt.GenreID != nil && (m.GenreID == nil || *m.GenreID != *flt.GenreID) {
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

func (f *fakeMovies) FindByID(_ context.Context, id int) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.movies {
		if f.movies[i].ID == id {
			return &f.movies[i], nil
		}
	}
	return nil, nil
}

// fakeNamed 导演、类型共用的内存存储
type fakeNamed struct {
	rows       map[int]string
	nextID     int
	referenced map[int]bool
	err        error
}

func newFakeNamed(rows map[int]string) *fakeNamed {
	f := &fakeNamed{rows: map[int]string{}, referenced: map[int]bool{}, nextID: 1}
	for id, name := range rows {
		f.rows[id] = name
		if id >= f.nextID {
			f.nextID = id + 1
		}
	}
	return f
}

func (f *fakeNamed) create(name string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := f.nextID
	f.nextID++
	f.rows[id] = name
	return id, nil
}

func (f *fakeNamed) UpdateName(_ context.Context, id int, name string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	f.rows[id] = name
	return nil
}

func (f *fakeNamed) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if f.referenced[id] {
		return repository.ErrReferenced
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeNamed) ids() []int {
	ids := make([]int, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type fakeDirectors struct{ *fakeNamed }

func (f fakeDirectors) Create(_ context.Context, d *model.Director) error {
	id, err := f.create(d.Name)
	d.ID = id
	return err
}

func (f fakeDirectors) FindByID(_ context.Context, id int) (*model.Director, error) {
	if f.err != nil {
		return nil, f.err
	}
	name, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &model.Director{ID: id, Name: name}, nil
}

func (f fakeDirectors) ListAll(context.Context) ([]model.Director, error) {
	if f.err != nil {
		return nil, f.err
	}
	var res []model.Director
	for _, id := range f.ids() {
		res = append(res, model.Director{ID: id, Name: f.rows[id]})
	}
	return res, nil
}

type fakeGenres struct{ *fakeNamed }

func (f fakeGenres) Create(_ context.Context, g *model.Genre) error {
	id, err := f.create(g.Name)
	g.ID = id
	return err
}

func (f fakeGenres) FindByID(_ context.Context, id int) (*model.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	name, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &model.Genre{ID: id, Name: name}, nil
}

func (f fakeGenres) ListAll(context.Context) ([]model.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	var res []model.Genre
	for _, id := range f.ids() {
		res = append(res, model.Genre{ID: id, Name: f.rows[id]})
	}
	return res, nil
}

type fixture struct {
	movies    *fakeMovies
	directors *fakeNamed
	genres    *fakeNamed
	engine    *gin.Engine
}

func intPtr(v int) *int { return &v }

// newFixture 构造与 router 相同的路由表，但不挂中间件
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	binding.EnableDecoderDisallowUnknownFields = true
	t.Cleanup(func() { binding.EnableDecoderDisallowUnknownFields = false })

	f := &fixture{
		movies: &fakeMovies{movies: []model.Movie{
			{ID: 1, Title: "X", GenreID: intPtr(1)},
			{ID: 2, Title: "Solaris", GenreID: intPtr(1), DirectorID: intPtr(1)},
			{ID: 3, Title: "Stalker", GenreID: intPtr(2), DirectorID: intPtr(1)},
		}},
		directors: newFakeNamed(map[int]string{1: "Tarkovsky"}),
		genres:    newFakeNamed(map[int]string{1: "Drama", 2: "Sci-Fi"}),
	}

	h := &Handler{
		Movies:    f.movies,
		Directors: fakeDirectors{f.directors},
		Genres:    fakeGenres{f.genres},
		Config:    &config.Config{},
	}

	r := gin.New()
	r.GET("/movies/", h.ListMovies)
	r.GET("/movies/:id", h.GetMovie)
	r.GET("/directors/", h.ListDirectors)
	r.POST("/directors/", h.CreateDirector)
	r.GET("/directors/:id", h.GetDirector)
	r.PUT("/directors/:id", h.UpdateDirector)
	r.DELETE("/directors/:id", h.DeleteDirector)
	r.GET("/genres/", h.ListGenres)
	r.POST("/genres/", h.CreateGenre)
	r.GET("/genres/:id", h.GetGenre)
	r.PUT("/genres/:id", h.UpdateGenre)
	r.DELETE("/genres/:id", h.DeleteGenre)
	f.engine = r
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}
