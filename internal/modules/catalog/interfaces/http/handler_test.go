package http_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	catalog_http "github.com/juliocloud/s206-projeto-final/internal/modules/catalog/interfaces/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockArtistService struct{ mock.Mock }

func (m *MockArtistService) CreateArtist(ctx context.Context, cmd application.CreateArtistCommand) (*domain.Artist, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *MockArtistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistService) DeleteArtist(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAlbumService struct{ mock.Mock }

func (m *MockAlbumService) CreateAlbum(ctx context.Context, cmd application.CreateAlbumCommand) (*domain.Album, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumService) GetAlbum(ctx context.Context, id int64) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumService) ListAlbumsByArtist(ctx context.Context, artistID int64) ([]domain.Album, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *MockAlbumService) UploadCover(ctx context.Context, id int64, image io.Reader) (*domain.Album, error) {
	data, _ := io.ReadAll(image)
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

type MockTrackService struct{ mock.Mock }

func (m *MockTrackService) CreateTrack(ctx context.Context, cmd application.CreateTrackCommand) (*domain.Track, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Track), args.Error(1)
}

func (m *MockTrackService) GetTrack(ctx context.Context, id int64) (*application.TrackWithLyrics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.TrackWithLyrics), args.Error(1)
}

type fixture struct {
	artists *MockArtistService
	albums  *MockAlbumService
	tracks  *MockTrackService
	router  chi.Router
}

func newFixture(maxCover int64) *fixture {
	f := &fixture{
		artists: new(MockArtistService),
		albums:  new(MockAlbumService),
		tracks:  new(MockTrackService),
	}
	h := catalog_http.NewCatalogHandler(f.artists, f.albums, f.tracks, maxCover)

	r := chi.NewRouter()
	r.Get("/artists", h.ListArtists)
	r.Post("/artists", h.CreateArtist)
	r.Get("/artists/{id}", h.GetArtist)
	r.Delete("/artists/{id}", h.DeleteArtist)
	r.Get("/artists/{id}/albums", h.ListArtistAlbums)
	r.Post("/albums", h.CreateAlbum)
	r.Get("/albums/{id}", h.GetAlbum)
	r.Post("/albums/{id}/cover", h.UploadCover)
	r.Post("/tracks", h.CreateTrack)
	r.Get("/tracks/{id}", h.GetTrack)
	f.router = r
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestCreateArtist(t *testing.T) {
	f := newFixture(0)
	f.artists.On("CreateArtist", mock.Anything, application.CreateArtistCommand{Name: "Test"}).
		Return(&domain.Artist{ID: 1, Name: "Test"}, nil).Once()
	f.artists.On("CreateArtist", mock.Anything, application.CreateArtistCommand{Name: "Dup"}).
		Return(nil, domain.ErrNameExists).Once()
	f.artists.On("CreateArtist", mock.Anything, application.CreateArtistCommand{}).
		Return(nil, domain.ErrNameRequired).Once()

	w := f.do("POST", "/artists", `{"name":"Test"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.Contains(t, w.Body.String(), `"name":"Test"`)

	w = f.do("POST", "/artists", `{"name":"Dup"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"name exists"}`, w.Body.String())

	w = f.do("POST", "/artists", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name required"}`, w.Body.String())

	w = f.do("POST", "/artists", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid body"}`, w.Body.String())

	f.artists.AssertExpectations(t)
}

func TestListArtists_EmptyIsArray(t *testing.T) {
	f := newFixture(0)
	f.artists.On("ListArtists", mock.Anything).Return([]domain.Artist{}, nil)

	w := f.do("GET", "/artists", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListArtists_InternalErrorIsGeneric(t *testing.T) {
	f := newFixture(0)
	f.artists.On("ListArtists", mock.Anything).Return([]domain.Artist(nil), assert.AnError)

	w := f.do("GET", "/artists", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestDeleteArtist(t *testing.T) {
	f := newFixture(0)
	f.artists.On("DeleteArtist", mock.Anything, int64(1)).Return(nil)
	f.artists.On("DeleteArtist", mock.Anything, int64(2)).Return(domain.ErrHasAlbums)
	f.artists.On("DeleteArtist", mock.Anything, int64(3)).Return(domain.ErrNotFound)

	w := f.do("DELETE", "/artists/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = f.do("DELETE", "/artists/2", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"has albums"}`, w.Body.String())

	w = f.do("DELETE", "/artists/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestInvalidPathIDs(t *testing.T) {
	f := newFixture(0)
	for _, p := range []string{"/artists/abc", "/artists/0", "/artists/-1/albums", "/albums/x", "/tracks/1.5"} {
		w := f.do("GET", p, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, p)
		assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String(), p)
	}
}

func TestGetArtist(t *testing.T) {
	f := newFixture(0)
	f.artists.On("GetArtist", mock.Anything, int64(1)).Return(&domain.Artist{ID: 1, Name: "A"}, nil)
	f.artists.On("GetArtist", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

	assert.Equal(t, http.StatusOK, f.do("GET", "/artists/1", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do("GET", "/artists/2", "").Code)
}

func TestAlbums(t *testing.T) {
	f := newFixture(0)
	f.albums.On("CreateAlbum", mock.Anything, application.CreateAlbumCommand{Name: "First", ArtistID: 1}).
		Return(&domain.Album{ID: 4, Name: "First", ArtistID: 1}, nil)
	f.albums.On("CreateAlbum", mock.Anything, application.CreateAlbumCommand{Name: "First", ArtistID: 99}).
		Return(nil, domain.ErrArtistNotFound)
	f.albums.On("ListAlbumsByArtist", mock.Anything, int64(42)).Return([]domain.Album{}, nil)
	f.albums.On("GetAlbum", mock.Anything, int64(4)).Return(&domain.Album{ID: 4, Name: "First", ArtistID: 1}, nil)

	w := f.do("POST", "/albums", `{"name":"First","artistId":1}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"name":"First","artistId":1,"coverUrl":null,"createdAt":"0001-01-01T00:00:00Z"}`, w.Body.String())

	w = f.do("POST", "/albums", `{"name":"First","artistId":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"artist not found"}`, w.Body.String())

	w = f.do("GET", "/artists/42/albums", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = f.do("GET", "/albums/4", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateTrack(t *testing.T) {
	f := newFixture(0)
	f.tracks.On("CreateTrack", mock.Anything, mock.MatchedBy(func(c application.CreateTrackCommand) bool {
		return c.Duration != nil && *c.Duration == 0
	})).Return(nil, domain.ErrDurationZero)
	f.tracks.On("CreateTrack", mock.Anything, mock.MatchedBy(func(c application.CreateTrackCommand) bool {
		return c.Duration != nil && *c.Duration < 0
	})).Return(nil, domain.ErrDurationNegative)
	f.tracks.On("CreateTrack", mock.Anything, mock.MatchedBy(func(c application.CreateTrackCommand) bool {
		return c.Duration == nil
	})).Return(nil, domain.ErrMissingField)
	f.tracks.On("CreateTrack", mock.Anything, mock.MatchedBy(func(c application.CreateTrackCommand) bool {
		return c.Duration != nil && *c.Duration > 0
	})).Return(&domain.Track{ID: 9, Name: "S", Duration: 200, AlbumID: 4}, nil)

	w := f.do("POST", "/tracks", `{"name":"S","duration":0,"albumId":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"duration invalid"}`, w.Body.String())

	w = f.do("POST", "/tracks", `{"name":"S","duration":-3,"albumId":4}`)
	assert.JSONEq(t, `{"error":"duration must be positive"}`, w.Body.String())

	w = f.do("POST", "/tracks", `{"name":"S","duration":null,"albumId":4}`)
	assert.JSONEq(t, `{"error":"missing field"}`, w.Body.String())

	w = f.do("POST", "/tracks", `{"name":"S","duration":200,"albumId":4}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"duration":200`)
}

func TestGetTrack_LyricsAlwaysPresent(t *testing.T) {
	f := newFixture(0)
	text := "words"
	f.tracks.On("GetTrack", mock.Anything, int64(1)).
		Return(&application.TrackWithLyrics{Track: domain.Track{ID: 1, Name: "S", Duration: 10, AlbumID: 2}, Lyrics: &text}, nil)
	f.tracks.On("GetTrack", mock.Anything, int64(2)).
		Return(&application.TrackWithLyrics{Track: domain.Track{ID: 2, Name: "T", Duration: 10, AlbumID: 2}}, nil)
	f.tracks.On("GetTrack", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

	w := f.do("GET", "/tracks/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lyrics":"words"`)

	w = f.do("GET", "/tracks/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lyrics":null`)
	assert.Contains(t, w.Body.String(), `"albumId":2`)

	w = f.do("GET", "/tracks/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, "cover.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadCover(t *testing.T) {
	f := newFixture(1024)
	url := "http://cdn/covers/4.jpg"
	f.albums.On("UploadCover", mock.Anything, int64(4), []byte("image-bytes")).
		Return(&domain.Album{ID: 4, Name: "First", ArtistID: 1, CoverURL: &url}, nil)

	body, ct := multipartBody(t, catalog_http.CoverField, []byte("image-bytes"))
	req := httptest.NewRequest("POST", "/albums/4/cover", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coverUrl":"http://cdn/covers/4.jpg"`)
}

func TestUploadCover_Rejections(t *testing.T) {
	f := newFixture(16)

	body, ct := multipartBody(t, "other", []byte("x"))
	req := httptest.NewRequest("POST", "/albums/4/cover", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"cover required"}`, w.Body.String())

	body, ct = multipartBody(t, catalog_http.CoverField, bytes.Repeat([]byte("x"), 64))
	req = httptest.NewRequest("POST", "/albums/4/cover", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	f.albums.AssertNotCalled(t, "UploadCover", mock.Anything, mock.Anything, mock.Anything)
}
