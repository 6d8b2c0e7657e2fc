package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
	websess "github.com/GoFolio/GoFolio/internal/web/session"
)

func newTestApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()

	websess.Init(sessionmemory.New(sessionmemory.Config{GCInterval: time.Minute}))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PortfolioItem{}))

	st := store.NewGorm(db)
	app := fiber.New()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, st))

	return app, st
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	sessionID := websess.GenerateSessionID()
	sessData := &websess.Data{User: models.User{ID: 1, Username: "admin"}}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	return &http.Cookie{Name: websess.CookieName, Value: sessionID}
}

func request(
	t *testing.T,
	app *fiber.App,
	method, target string,
	body interface{},
	cookies ...*http.Cookie,
) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func validInsert() models.InsertPortfolioItem {
	return models.InsertPortfolioItem{
		Title:       "Shop App",
		Description: "A small shop",
		Image:       "/static/img/shop.png",
		Category:    "mobile",
		Links: models.PortfolioLinks{
			Preview: "https://shop.example.com",
			GitHub:  "https://github.com/alice/shop",
		},
	}
}

func TestListPortfolioItems(t *testing.T) {
	app, st := newTestApp(t)

	resp := request(t, app, http.MethodGet, Path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.PortfolioItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Empty(t, items)

	insert := validInsert()
	_, err := st.CreatePortfolioItem(context.Background(), &insert)
	require.NoError(t, err)

	resp = request(t, app, http.MethodGet, Path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "https://github.com/alice/shop", items[0].Links.GitHub)
}

func TestCreatePortfolioItem(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := adminCookie(t)

	resp := request(t, app, http.MethodPost, Path, validInsert())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodPost, Path, models.InsertPortfolioItem{Title: "only a title"}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, http.MethodPost, Path, validInsert(), cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.PortfolioItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Shop App", created.Title)
}

func TestGetPortfolioItem(t *testing.T) {
	app, st := newTestApp(t)

	insert := validInsert()
	item, err := st.CreatePortfolioItem(context.Background(), &insert)
	require.NoError(t, err)

	resp := request(t, app, http.MethodGet, Path+"/"+strconv.FormatUint(item.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.PortfolioItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, item.ID, got.ID)

	resp = request(t, app, http.MethodGet, Path+"/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdatePortfolioItem(t *testing.T) {
	app, st := newTestApp(t)
	cookie := adminCookie(t)

	insert := validInsert()
	item, err := st.CreatePortfolioItem(context.Background(), &insert)
	require.NoError(t, err)

	title := "Shop App v2"
	links := models.PortfolioLinks{PlayStore: "https://play.example.com/shop"}
	resp := request(
		t, app, http.MethodPut,
		Path+"/"+strconv.FormatUint(item.ID, 10),
		models.UpdatePortfolioItem{Title: &title, Links: &links},
		cookie,
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PortfolioItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Shop App v2", updated.Title)
	assert.Equal(t, "https://play.example.com/shop", updated.Links.PlayStore)
	assert.Empty(t, updated.Links.GitHub, "links are replaced as a block")
	assert.Equal(t, "mobile", updated.Category, "unset fields keep their value")
}

func TestDeletePortfolioItem(t *testing.T) {
	app, st := newTestApp(t)
	cookie := adminCookie(t)

	insert := validInsert()
	item, err := st.CreatePortfolioItem(context.Background(), &insert)
	require.NoError(t, err)

	target := Path + "/" + strconv.FormatUint(item.ID, 10)

	resp := request(t, app, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, target, nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Portfolio item deleted", body["message"])

	resp = request(t, app, http.MethodDelete, target, nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
