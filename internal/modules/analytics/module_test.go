package analytics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModule_ServesOverview(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mod := NewModule(sqlx.NewDb(sqlDB, "sqlmock"))
	require.NotNil(t, mod.Service())
	require.NotNil(t, mod.HTTPHandler())

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"artists", "albums", "tracks", "labels", "total_duration"}).
			AddRow(1, 1, 2, 0, 300))
	mock.ExpectQuery("FROM artists ar").
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "albums", "tracks"}).
			AddRow(1, "Nina Simone", 1, 2))

	w := httptest.NewRecorder()
	mod.HTTPHandler().Overview(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"topArtists":[{"artistId":1,"name":"Nina Simone","albums":1,"tracks":2}]`)
	require.NoError(t, mock.ExpectationsWereMet())
}
