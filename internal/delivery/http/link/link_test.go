package http_link

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	http_common "github.com/htessier/movielens-api/internal/delivery/http/common"
	"github.com/htessier/movielens-api/internal/model"
	usecase_link "github.com/htessier/movielens-api/internal/usecase/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRepoStub struct {
	link    model.Link
	found   bool
	list    []model.Link
	err     error
	gotPage model.Page
}

func (s *linkRepoStub) LoadByMovieID(ctx context.Context, movieID int64) (model.Link, bool, error) {
	return s.link, s.found, s.err
}

func (s *linkRepoStub) Load(ctx context.Context, p model.Page) ([]model.Link, error) {
	s.gotPage = p
	return s.list, s.err
}

func setupRouter(repo *linkRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	New(usecase_link.New(repo)).RegisterRoutes(engine.Group(""))
	return engine
}

func serve(t *testing.T, engine *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func strptr(s string) *string { return &s }
func int64ptr(v int64) *int64 { return &v }

func TestGetLink(t *testing.T) {
	t.Parallel()

	t.Run("Should return both external identifiers", func(t *testing.T) {
		repo := &linkRepoStub{
			link:  model.Link{MovieID: 1, ImdbID: strptr("0114709"), TmdbID: int64ptr(862)},
			found: true,
		}
		engine := setupRouter(repo)

		rec := serve(t, engine, "/links/1")

		require.Equal(t, http.StatusOK, rec.Code)
		var body LinkResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(1), body.MovieID)
		require.NotNil(t, body.ImdbID)
		assert.Equal(t, "0114709", *body.ImdbID)
		require.NotNil(t, body.TmdbID)
		assert.Equal(t, int64(862), *body.TmdbID)
	})

	t.Run("Should keep missing external identifiers null", func(t *testing.T) {
		repo := &linkRepoStub{link: model.Link{MovieID: 7}, found: true}
		engine := setupRouter(repo)

		rec := serve(t, engine, "/links/7")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"movieId":7,"imdbId":null,"tmdbId":null}`, rec.Body.String())
	})

	t.Run("Should answer 404 naming the movie id", func(t *testing.T) {
		engine := setupRouter(&linkRepoStub{found: false})

		rec := serve(t, engine, "/links/424242")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body http_common.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "424242")
	})

	t.Run("Should answer 400 on a non-integer movie id", func(t *testing.T) {
		engine := setupRouter(&linkRepoStub{})

		rec := serve(t, engine, "/links/abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should answer 500 on a storage failure", func(t *testing.T) {
		engine := setupRouter(&linkRepoStub{err: errors.New("connection reset")})

		rec := serve(t, engine, "/links/1")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListLinks(t *testing.T) {
	t.Parallel()

	t.Run("Should pass pagination through", func(t *testing.T) {
		repo := &linkRepoStub{list: []model.Link{{MovieID: 11}}}
		engine := setupRouter(repo)

		rec := serve(t, engine, "/links?skip=10&limit=5")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.Page{Skip: 10, Limit: 5}, repo.gotPage)
	})

	t.Run("Should serialize an empty result as an empty array", func(t *testing.T) {
		engine := setupRouter(&linkRepoStub{list: []model.Link{}})

		rec := serve(t, engine, "/links")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Should reject a negative skip", func(t *testing.T) {
		engine := setupRouter(&linkRepoStub{})

		rec := serve(t, engine, "/links?skip=-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
