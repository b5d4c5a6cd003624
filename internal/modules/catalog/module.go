package catalog

import (
	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/application"
	persistence "github.com/juliocloud/s206-projeto-final/internal/modules/catalog/infrastructure/persistence/postgres"
	catalogHttp "github.com/juliocloud/s206-projeto-final/internal/modules/catalog/interfaces/http"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
)

// Module represents the Catalog module
type Module struct {
	artists *application.ArtistService
	albums  *application.AlbumService
	tracks  *application.TrackService
	handler *catalogHttp.CatalogHandler
}

// Dependencies are the collaborators the catalog needs from other modules.
type Dependencies struct {
	Lyrics        application.LyricsProvider
	Covers        application.CoverStore
	Publisher     notification.Publisher
	MaxCoverBytes int64
}

// NewModule creates and initializes the Catalog module
func NewModule(db *sqlx.DB, deps Dependencies) *Module {
	artistRepo := persistence.NewArtistRepository(db)
	albumRepo := persistence.NewAlbumRepository(db)
	trackRepo := persistence.NewTrackRepository(db)

	artists := application.NewArtistService(artistRepo, deps.Publisher)
	albums := application.NewAlbumService(albumRepo, artistRepo, deps.Covers, deps.Publisher)
	tracks := application.NewTrackService(trackRepo, albumRepo, deps.Lyrics, deps.Publisher)

	return &Module{
		artists: artists,
		albums:  albums,
		tracks:  tracks,
		handler: catalogHttp.NewCatalogHandler(artists, albums, tracks, deps.MaxCoverBytes),
	}
}

func (m *Module) ArtistService() *application.ArtistService {
	return m.artists
}

func (m *Module) AlbumService() *application.AlbumService {
	return m.albums
}

func (m *Module) TrackService() *application.TrackService {
	return m.tracks
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *catalogHttp.CatalogHandler {
	return m.handler
}
