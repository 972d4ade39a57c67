package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecomdash/product-dashboard/internal/hash"
	"github.com/ecomdash/product-dashboard/internal/httpserver"
	"github.com/ecomdash/product-dashboard/internal/logging"
	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/repo"
	"github.com/ecomdash/product-dashboard/internal/service"
	"github.com/ecomdash/product-dashboard/internal/tokens"
)

var testSecret = []byte("test_secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	r := repo.New(db)
	authSvc := service.NewAuthService(r, nil, testSecret, time.Hour)
	catalogSvc := service.NewCatalogService(r, nil, nil)

	e := httpserver.New(&httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		JWTSecret:      testSecret,
		Logger:         logging.New("error"),
	})

	return &testEnv{T: t, E: e, Repo: r}
}

func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// newUser inserts a user row directly and returns a signed session token.
func (env *testEnv) newUser(username, role string) (models.User, string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword("password123")
	require.NoError(env.T, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(env.T, env.Repo.DB.Create(&user).Error)

	token, err := tokens.Sign(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(env.T, err)
	return user, token
}

func (env *testEnv) seedProduct(name string) models.Product {
	env.T.Helper()
	p := models.Product{Name: name, Description: "desc", Price: 9.99, StockQuantity: 5}
	require.NoError(env.T, env.Repo.DB.Create(&p).Error)
	return p
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
