package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivamstore/storefront/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	return engine
}

func TestLoginUserRoundTripOmitsPasswordHash(t *testing.T) {
	engine := newSessionEngine()

	engine.GET("/set", func(c *gin.Context) {
		err := SetLoginUser(c, &model.User{
			Id:       7,
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "$2a$10$notforthecookie",
		})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})
	engine.GET("/get", func(c *gin.Context) {
		user := GetLoginUser(c)
		require.NotNil(t, user)
		assert.Equal(t, 7, user.Id)
		assert.Equal(t, "Asha", user.Name)
		assert.Equal(t, "asha@example.com", user.Email)
		// The hash must not survive the cookie round trip.
		assert.Empty(t, user.Password)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/set", nil)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCartRoundTripAndLoginReset(t *testing.T) {
	engine := newSessionEngine()

	engine.GET("/add", func(c *gin.Context) {
		cart := GetCart(c)
		cart.AddItem(&model.Product{Id: 1, Name: "Rice", Price: 10})
		require.NoError(t, SaveCart(c, cart))
		c.Status(http.StatusOK)
	})
	engine.GET("/login", func(c *gin.Context) {
		require.NoError(t, SetLoginUser(c, &model.User{Id: 1, Name: "A", Email: "a@x.com"}))
		c.Status(http.StatusOK)
	})
	engine.GET("/cart", func(c *gin.Context) {
		cart := GetCart(c)
		c.JSON(http.StatusOK, gin.H{"len": cart.Len()})
	})

	do := func(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		engine.ServeHTTP(w, req)
		return w
	}

	w := do("/add", nil)
	cookies := w.Result().Cookies()

	w = do("/cart", cookies)
	assert.Contains(t, w.Body.String(), `"len":1`)

	// Logging in resets the cart.
	w = do("/login", cookies)
	cookies = w.Result().Cookies()
	w = do("/cart", cookies)
	assert.Contains(t, w.Body.String(), `"len":0`)
}
