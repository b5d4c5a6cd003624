package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/application"
	"github.com/juliocloud/s206-projeto-final/internal/shared/apperror"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

// CoverField is the multipart field that carries an album cover.
const CoverField = "cover"

var (
	ErrCoverMissing  = apperror.Validation("cover required")
	ErrCoverTooLarge = apperror.TooLarge("file too large")
)

// CatalogHandler serves artists, albums and tracks.
type CatalogHandler struct {
	artists       ArtistService
	albums        AlbumService
	tracks        TrackService
	maxCoverBytes int64
}

func NewCatalogHandler(artists ArtistService, albums AlbumService, tracks TrackService, maxCoverBytes int64) *CatalogHandler {
	if maxCoverBytes <= 0 {
		maxCoverBytes = 10 << 20
	}
	return &CatalogHandler{
		artists:       artists,
		albums:        albums,
		tracks:        tracks,
		maxCoverBytes: maxCoverBytes,
	}
}

func pathID(r *http.Request) (int64, error) {
	return utils.ParseID(chi.URLParam(r, "id"))
}

func (h *CatalogHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.ListArtists(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artists)
}

func (h *CatalogHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	artist, err := h.artists.GetArtist(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *CatalogHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateArtistCommand
	if err := utils.DecodeJSON(r, &cmd); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	artist, err := h.artists.CreateArtist(r.Context(), cmd)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, artist)
}

func (h *CatalogHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	if err := h.artists.DeleteArtist(r.Context(), id); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) ListArtistAlbums(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	albums, err := h.albums.ListAlbumsByArtist(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, albums)
}

func (h *CatalogHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateAlbumCommand
	if err := utils.DecodeJSON(r, &cmd); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	album, err := h.albums.CreateAlbum(r.Context(), cmd)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, album)
}

func (h *CatalogHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	album, err := h.albums.GetAlbum(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, album)
}

// UploadCover accepts a multipart form with the image in the "cover" field.
func (h *CatalogHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	// Leave room for multipart headers around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxCoverBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxCoverBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteAppError(w, r, ErrCoverTooLarge)
			return
		}
		utils.WriteAppError(w, r, apperror.Validation(utils.MsgInvalidBody).Wrap(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(CoverField)
	if err != nil {
		utils.WriteAppError(w, r, ErrCoverMissing)
		return
	}
	defer file.Close()
	if header.Size > h.maxCoverBytes {
		utils.WriteAppError(w, r, ErrCoverTooLarge)
		return
	}

	album, err := h.albums.UploadCover(r.Context(), id, file)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, album)
}

func (h *CatalogHandler) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateTrackCommand
	if err := utils.DecodeJSON(r, &cmd); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	track, err := h.tracks.CreateTrack(r.Context(), cmd)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, track)
}

// GetTrack always answers 200 for an existing track; lyrics is null when the
// lookup found nothing.
func (h *CatalogHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	track, err := h.tracks.GetTrack(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, track)
}
