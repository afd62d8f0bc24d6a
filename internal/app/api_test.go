package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/testutil"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/http/handlers"
	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/pkg/pointers"
)

type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type testAPI struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutil.DB(t)
	a := &App{
		Log: testutil.Logger(t),
		Cfg: Config{CORSOrigins: []string{"*"}},
	}
	require.NoError(t, a.build(gdb, gormPinger{db: gdb}, nil))
	return &testAPI{t: t, r: a.Server.Engine, db: gdb}
}

func (api *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	api.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(api.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	api.r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	env := decode[response.ErrorEnvelope](t, rec)
	assert.Equal(t, code, env.Error.Code)
	assert.NotEmpty(t, env.Error.Message)
}

func TestArtistLifecycle(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/artists", map[string]any{"Name": "AC/DC"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[types.Artist](t, rec)
	require.NotZero(t, created.ArtistID)
	assert.Equal(t, "AC/DC", created.Name)

	rec = api.do(http.MethodGet, "/artists/"+itoa(created.ArtistID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[types.Artist](t, rec))

	rec = api.do(http.MethodPut, "/artists/"+itoa(created.ArtistID), map[string]any{"Name": "Accept"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Accept", decode[types.Artist](t, rec).Name)

	rec = api.do(http.MethodDelete, "/artists/"+itoa(created.ArtistID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Accept", decode[types.Artist](t, rec).Name)

	requireAPIError(t, api.do(http.MethodGet, "/artists/"+itoa(created.ArtistID), nil), http.StatusNotFound, "artist_not_found")
	requireAPIError(t, api.do(http.MethodDelete, "/artists/"+itoa(created.ArtistID), nil), http.StatusNotFound, "artist_not_found")
}

func TestRequestValidation(t *testing.T) {
	api := newTestAPI(t)

	requireAPIError(t, api.do(http.MethodPost, "/artists", map[string]any{}), http.StatusBadRequest, "invalid_request")
	requireAPIError(t, api.do(http.MethodPost, "/artists", map[string]any{"Name": "   "}), http.StatusBadRequest, "invalid_request")
	requireAPIError(t, api.do(http.MethodPost, "/artists", nil), http.StatusBadRequest, "invalid_request")
	requireAPIError(t, api.do(http.MethodGet, "/artists/abc", nil), http.StatusBadRequest, "invalid_id")
	requireAPIError(t, api.do(http.MethodGet, "/artists?skip=-1", nil), http.StatusBadRequest, "invalid_query")
	requireAPIError(t, api.do(http.MethodGet, "/tracks?genre_id=x", nil), http.StatusBadRequest, "invalid_query")

	rec := api.do(http.MethodPost, "/invoices/1/lines", map[string]any{"InvoiceId": 1, "TrackId": 1, "UnitPrice": 0.99, "Quantity": 0})
	requireAPIError(t, rec, http.StatusBadRequest, "invalid_request")
	assert.Contains(t, decode[response.ErrorEnvelope](t, rec).Error.Message, "Quantity")
}

func TestListPaging(t *testing.T) {
	api := newTestAPI(t)
	for _, name := range []string{"First", "Second", "Third", "Fourth"} {
		testutil.SeedArtist(t, api.db, name)
	}

	rec := api.do(http.MethodGet, "/artists?skip=2&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]types.Artist](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "Third", rows[0].Name)

	rec = api.do(http.MethodGet, "/artists?limit=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = api.do(http.MethodGet, "/artists", nil)
	assert.Len(t, decode[[]types.Artist](t, rec), 4)
}

func TestAlbumsAndTracks(t *testing.T) {
	api := newTestAPI(t)
	artist := testutil.SeedArtist(t, api.db, "Queen")
	album := testutil.SeedAlbum(t, api.db, artist.ArtistID, "A Night at the Opera")
	rock := testutil.SeedGenre(t, api.db, "Rock")
	mpeg := testutil.SeedMediaType(t, api.db, "MPEG audio file")
	testutil.SeedTrack(t, api.db, "Love of My Life", mpeg.MediaTypeID, &album.AlbumID, &rock.GenreID)
	testutil.SeedTrack(t, api.db, "Bohemian Rhapsody", mpeg.MediaTypeID, &album.AlbumID, nil)

	rec := api.do(http.MethodGet, "/albums/"+itoa(album.AlbumID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[types.AlbumWithArtist](t, rec)
	require.NotNil(t, detail.Artist)
	assert.Equal(t, "Queen", detail.Artist.Name)

	rec = api.do(http.MethodGet, "/albums/by-artist/"+itoa(artist.ArtistID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Album](t, rec), 1)
	requireAPIError(t, api.do(http.MethodGet, "/albums/by-artist/999", nil), http.StatusNotFound, "artist_not_found")

	rec = api.do(http.MethodGet, "/tracks?genre_id="+itoa(rock.GenreID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Track](t, rec), 1)

	rec = api.do(http.MethodGet, "/tracks/search?query=LOVE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[[]types.Track](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, "Love of My Life", found[0].Name)
	requireAPIError(t, api.do(http.MethodGet, "/tracks/search", nil), http.StatusBadRequest, "invalid_query")

	rec = api.do(http.MethodPost, "/tracks", map[string]any{
		"Name": "Seaside Rendezvous", "MediaTypeId": 99, "Milliseconds": 1000, "UnitPrice": 0.99,
	})
	requireAPIError(t, rec, http.StatusNotFound, "media_type_not_found")

	rec = api.do(http.MethodPost, "/tracks", map[string]any{
		"Name": "Seaside Rendezvous", "MediaTypeId": mpeg.MediaTypeID, "Milliseconds": 1000, "UnitPrice": 0.99,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	track := decode[types.Track](t, rec)
	assert.Nil(t, track.AlbumID)

	rec = api.do(http.MethodGet, "/tracks/"+itoa(track.TrackID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	td := decode[types.TrackDetail](t, rec)
	assert.Nil(t, td.Album)
	require.NotNil(t, td.MediaType)
	assert.Equal(t, "MPEG audio file", td.MediaType.Name)

	requireAPIError(t, api.do(http.MethodDelete, "/genres/"+itoa(rock.GenreID), nil), http.StatusBadRequest, "genre_in_use")
	rec = api.do(http.MethodGet, "/genres/"+itoa(rock.GenreID)+"/tracks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Track](t, rec), 1)
}

func TestPlaylistMembership(t *testing.T) {
	api := newTestAPI(t)
	mt := testutil.SeedMediaType(t, api.db, "AAC audio file")
	one := testutil.SeedTrack(t, api.db, "One", mt.MediaTypeID, nil, nil)
	two := testutil.SeedTrack(t, api.db, "Two", mt.MediaTypeID, nil, nil)
	pl := testutil.SeedPlaylist(t, api.db, "Road Trip")
	base := "/playlists/" + itoa(pl.PlaylistID) + "/tracks"

	rec := api.do(http.MethodPost, base+"?track_id="+itoa(one.TrackID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Track added to playlist successfully", decode[response.MessageBody](t, rec).Message)

	requireAPIError(t, api.do(http.MethodPost, base+"?track_id="+itoa(one.TrackID), nil), http.StatusBadRequest, "track_already_in_playlist")
	requireAPIError(t, api.do(http.MethodPost, base+"?track_id=999", nil), http.StatusNotFound, "track_not_found")
	requireAPIError(t, api.do(http.MethodPost, "/playlists/999/tracks?track_id="+itoa(one.TrackID), nil), http.StatusNotFound, "playlist_not_found")

	rec = api.do(http.MethodPost, base, map[string]any{"TrackId": two.TrackID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Track](t, rec), 2)

	rec = api.do(http.MethodGet, "/playlists/"+itoa(pl.PlaylistID)+"/with-tracks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[types.PlaylistWithTracks](t, rec).Tracks, 2)

	rec = api.do(http.MethodDelete, base+"/"+itoa(one.TrackID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Track removed from playlist successfully", decode[response.MessageBody](t, rec).Message)
	requireAPIError(t, api.do(http.MethodDelete, base+"/"+itoa(one.TrackID), nil), http.StatusNotFound, "track_not_in_playlist")
}

func TestEmployeeRules(t *testing.T) {
	api := newTestAPI(t)
	boss := testutil.SeedEmployee(t, api.db, "Andrew", "Adams", nil)
	testutil.SeedEmployee(t, api.db, "Nancy", "Edwards", &boss.EmployeeID)

	rec := api.do(http.MethodPut, "/employees/"+itoa(boss.EmployeeID), map[string]any{
		"FirstName": "Andrew", "LastName": "Adams", "ReportsTo": boss.EmployeeID,
	})
	requireAPIError(t, rec, http.StatusBadRequest, "self_report")

	rec = api.do(http.MethodGet, "/employees/"+itoa(boss.EmployeeID)+"/subordinates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Employee](t, rec), 1)

	requireAPIError(t, api.do(http.MethodDelete, "/employees/"+itoa(boss.EmployeeID), nil), http.StatusBadRequest, "employee_has_subordinates")

	rec = api.do(http.MethodPost, "/employees", map[string]any{
		"FirstName": "Jane", "LastName": "Peacock", "ReportsTo": 999, "HireDate": "2002-04-01 00:00:00",
	})
	requireAPIError(t, rec, http.StatusNotFound, "manager_not_found")
}

func TestInvoiceLinesRecomputeTotal(t *testing.T) {
	api := newTestAPI(t)
	cust := testutil.SeedCustomer(t, api.db, "Luís", "Gonçalves", "luisg@embraer.com.br", pointers.String("Embraer"))
	mt := testutil.SeedMediaType(t, api.db, "MPEG audio file")
	tr := testutil.SeedTrack(t, api.db, "Balls to the Wall", mt.MediaTypeID, nil, nil)
	inv := testutil.SeedInvoice(t, api.db, cust.CustomerID)
	base := "/invoices/" + itoa(inv.InvoiceID)

	for _, line := range []map[string]any{
		{"InvoiceId": inv.InvoiceID, "TrackId": tr.TrackID, "UnitPrice": 0.99, "Quantity": 3},
		{"InvoiceId": inv.InvoiceID, "TrackId": tr.TrackID, "UnitPrice": 1.98, "Quantity": 2},
	} {
		rec := api.do(http.MethodPost, base+"/lines", line)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := api.do(http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[types.InvoiceWithLines](t, rec)
	assert.Equal(t, 6.93, detail.Total)
	assert.Len(t, detail.InvoiceLines, 2)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, cust.CustomerID, detail.Customer.CustomerID)

	rec = api.do(http.MethodPost, base+"/lines", map[string]any{"InvoiceId": inv.InvoiceID + 1, "TrackId": tr.TrackID, "UnitPrice": 0.99, "Quantity": 1})
	requireAPIError(t, rec, http.StatusBadRequest, "invoice_id_mismatch")
	rec = api.do(http.MethodPost, base+"/lines", map[string]any{"InvoiceId": inv.InvoiceID, "TrackId": 999, "UnitPrice": 0.99, "Quantity": 1})
	requireAPIError(t, rec, http.StatusNotFound, "track_not_found")

	rec = api.do(http.MethodGet, "/invoices/customer/"+itoa(cust.CustomerID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Invoice](t, rec), 1)

	rec = api.do(http.MethodGet, "/customers/search/EMBRAER", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.Customer](t, rec), 1)

	rec = api.do(http.MethodGet, "/customers/"+itoa(cust.CustomerID)+"/with-invoices", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[types.CustomerWithInvoices](t, rec).Invoices, 1)
}

func TestOperationalRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/static/index.html", rec.Header().Get("Location"))

	rec = api.do(http.MethodGet, "/static/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chinook API")

	rec = api.do(http.MethodGet, "/api", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[handlers.APIInfo](t, rec)
	assert.Equal(t, "Welcome to the Chinook API", info.Message)
	assert.Equal(t, "/docs", info.Documentation)
	assert.Equal(t, handlers.ResourcePaths, info.Endpoints)

	rec = api.do(http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = api.do(http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", nil)
	requireAPIError(t, rec, http.StatusNotFound, "route_not_found")

	rec = api.do(http.MethodGet, "/artists", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
