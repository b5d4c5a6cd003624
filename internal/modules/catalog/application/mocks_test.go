package application

import (
	"context"
	"io"
	"sync"

	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
)

type artistRepoMock struct {
	createFn  func(context.Context, *domain.Artist) error
	listFn    func(context.Context) ([]domain.Artist, error)
	getByIDFn func(context.Context, int64) (*domain.Artist, error)
	existsFn  func(context.Context, int64) (bool, error)
	deleteFn  func(context.Context, int64) (bool, error)
}

func (m artistRepoMock) Create(ctx context.Context, a *domain.Artist) error { return m.createFn(ctx, a) }
func (m artistRepoMock) List(ctx context.Context) ([]domain.Artist, error)  { return m.listFn(ctx) }
func (m artistRepoMock) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	return m.getByIDFn(ctx, id)
}
func (m artistRepoMock) Exists(ctx context.Context, id int64) (bool, error) { return m.existsFn(ctx, id) }
func (m artistRepoMock) DeleteIfNoAlbums(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}

type albumRepoMock struct {
	createFn       func(context.Context, *domain.Album) error
	getByIDFn      func(context.Context, int64) (*domain.Album, error)
	existsFn       func(context.Context, int64) (bool, error)
	listByArtistFn func(context.Context, int64) ([]domain.Album, error)
	updateCoverFn  func(context.Context, int64, string) (*domain.Album, error)
}

func (m albumRepoMock) Create(ctx context.Context, a *domain.Album) error { return m.createFn(ctx, a) }
func (m albumRepoMock) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	return m.getByIDFn(ctx, id)
}
func (m albumRepoMock) Exists(ctx context.Context, id int64) (bool, error) { return m.existsFn(ctx, id) }
func (m albumRepoMock) ListByArtist(ctx context.Context, artistID int64) ([]domain.Album, error) {
	return m.listByArtistFn(ctx, artistID)
}
func (m albumRepoMock) UpdateCover(ctx context.Context, id int64, url string) (*domain.Album, error) {
	return m.updateCoverFn(ctx, id, url)
}

type trackRepoMock struct {
	createFn  func(context.Context, *domain.Track) error
	getByIDFn func(context.Context, int64) (*domain.Track, error)
}

func (m trackRepoMock) Create(ctx context.Context, t *domain.Track) error { return m.createFn(ctx, t) }
func (m trackRepoMock) GetByID(ctx context.Context, id int64) (*domain.Track, error) {
	return m.getByIDFn(ctx, id)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notification.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e notification.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type lyricsStub struct {
	text  string
	ok    bool
	calls int
	names []string
}

func (l *lyricsStub) Lookup(_ context.Context, name string) (string, bool) {
	l.calls++
	l.names = append(l.names, name)
	return l.text, l.ok
}

type coverStoreStub struct {
	url     string
	err     error
	got     []byte
	removed []string
}

func (c *coverStoreStub) StoreCover(_ context.Context, _ int64, r io.Reader) (string, error) {
	c.got, _ = io.ReadAll(r)
	return c.url, c.err
}

func (c *coverStoreStub) RemoveCover(_ context.Context, url string) error {
	c.removed = append(c.removed, url)
	return nil
}

func intPtr(v int) *int { return &v }
