package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"
	"github.com/shivamstore/storefront/web/service"
	"github.com/shivamstore/storefront/web/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id int) string {
	return strconv.Itoa(id)
}

func testCart() session.Cart {
	cart := session.Cart{}
	cart.AddItem(&model.Product{Id: 1, Name: "ProductX", Price: 10.0})
	cart.AddItem(&model.Product{Id: 2, Name: "ProductY", Price: 15.5})
	return cart
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("STORE_UPLOAD_FOLDER", filepath.Join(dir, "uploads"))

	require.NoError(t, database.InitDB(filepath.Join(dir, "test.db")))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
	})

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)

	ts := httptest.NewServer(engine)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestCheckoutScenario(t *testing.T) {
	ts, client := newTestServer(t)

	catalog := service.CatalogService{}
	spices, err := catalog.EnsureCategory("Spices")
	require.NoError(t, err)
	require.NoError(t, catalog.AddProduct(&model.Product{
		Name: "ProductX", Price: 10.0, CategoryId: spices.Id,
	}))
	require.NoError(t, catalog.AddProduct(&model.Product{
		Name: "ProductY", Price: 15.5, CategoryId: spices.Id,
	}))

	// Cart routes without a session redirect to login.
	resp, err := client.Get(ts.URL + "/cart")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Customer Login")

	resp = postForm(t, client, ts.URL+"/register", url.Values{
		"name":     {"A"},
		"email":    {"a@x.com"},
		"password": {"secret"},
	})
	assert.Contains(t, body(t, resp), "Customer Login")

	resp = postForm(t, client, ts.URL+"/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"secret"},
	})
	assert.Contains(t, body(t, resp), "ProductX")

	products, err := catalog.GetProducts(0)
	require.NoError(t, err)
	require.Len(t, products, 2)

	for _, p := range products {
		resp = postForm(t, client, ts.URL+"/add-to-cart/"+itoa(p.Id), url.Values{})
		resp.Body.Close()
	}

	resp, err = client.Get(ts.URL + "/cart")
	require.NoError(t, err)
	cartBody := body(t, resp)
	assert.Contains(t, cartBody, "ProductX")
	assert.Contains(t, cartBody, "ProductY")
	assert.Contains(t, cartBody, "25.50")

	resp = postForm(t, client, ts.URL+"/place-order", url.Values{
		"payment": {"COD"},
	})
	assert.Contains(t, body(t, resp), "Order placed")

	orders := service.OrderService{}
	placed, err := orders.GetOrders()
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, "A", placed[0].UserName)
	assert.Equal(t, "ProductX, ProductY", placed[0].Items)
	assert.Equal(t, 25.5, placed[0].Total)
	assert.Equal(t, "COD", placed[0].PaymentMethod)
	assert.Equal(t, model.OrderStatusPending, placed[0].Status)
	assert.Len(t, placed[0].Lines, 2)

	// The cart was cleared by the successful checkout.
	resp, err = client.Get(ts.URL + "/cart")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Your cart is empty")
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	ts, client := newTestServer(t)

	catalog := service.CatalogService{}
	spices, err := catalog.EnsureCategory("Spices")
	require.NoError(t, err)
	require.NoError(t, catalog.AddProduct(&model.Product{
		Name: "ProductX", Price: 10.0, CategoryId: spices.Id,
	}))

	users := service.UserService{}
	_, err = users.Register("A", "a@x.com", "secret")
	require.NoError(t, err)
	resp := postForm(t, client, ts.URL+"/login", url.Values{
		"email": {"a@x.com"}, "password": {"secret"},
	})
	resp.Body.Close()

	products, err := catalog.GetProducts(0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	resp = postForm(t, client, ts.URL+"/add-to-cart/"+itoa(products[0].Id), url.Values{})
	resp.Body.Close()

	// Break the database out from under the checkout.
	sqlDB, err := database.GetDB().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp = postForm(t, client, ts.URL+"/place-order", url.Values{
		"payment": {"COD"},
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()

	// The cart lives in the session, so the failed checkout left it intact.
	resp, err = client.Get(ts.URL + "/cart")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "ProductX")
}

func TestProductCategoryFilter(t *testing.T) {
	ts, client := newTestServer(t)

	catalog := service.CatalogService{}
	spices, _ := catalog.EnsureCategory("Spices")
	fruits, _ := catalog.EnsureCategory("Fruits")
	require.NoError(t, catalog.AddProduct(&model.Product{Name: "Cumin", Price: 2, CategoryId: spices.Id}))
	require.NoError(t, catalog.AddProduct(&model.Product{Name: "Mango", Price: 5, CategoryId: fruits.Id}))

	users := service.UserService{}
	_, err := users.Register("A", "a@x.com", "secret")
	require.NoError(t, err)
	resp := postForm(t, client, ts.URL+"/login", url.Values{
		"email": {"a@x.com"}, "password": {"secret"},
	})
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/products?category=" + itoa(spices.Id))
	require.NoError(t, err)
	filtered := body(t, resp)
	assert.Contains(t, filtered, "Cumin")
	assert.NotContains(t, filtered, "Mango")

	resp, err = client.Get(ts.URL + "/products")
	require.NoError(t, err)
	all := body(t, resp)
	assert.Contains(t, all, "Cumin")
	assert.Contains(t, all, "Mango")
}

func TestAdminOrderLifecycle(t *testing.T) {
	ts, client := newTestServer(t)

	orders := service.OrderService{}
	cart := testCart()
	placed, err := orders.PlaceOrder("A", cart, "COD")
	require.NoError(t, err)

	// Admin routes without a session redirect to the admin login.
	resp, err := client.Get(ts.URL + "/admin/orders")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Admin Login")

	resp = postForm(t, client, ts.URL+"/admin", url.Values{
		"email":    {"admin@shivam.com"},
		"password": {"admin123"},
	})
	assert.Contains(t, body(t, resp), "Dashboard")

	resp, err = client.Get(ts.URL + "/admin/order-complete/" + itoa(placed.Id))
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Delivered")

	resp, err = client.Get(ts.URL + "/admin/order-complete/99999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/admin/order-delete/" + itoa(placed.Id))
	require.NoError(t, err)
	assert.NotContains(t, body(t, resp), placed.RefNo)

	remaining, err := orders.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestAdminOrderApiAndAjax(t *testing.T) {
	ts, client := newTestServer(t)

	orders := service.OrderService{}
	placed, err := orders.PlaceOrder("A", testCart(), "COD")
	require.NoError(t, err)

	resp := postForm(t, client, ts.URL+"/admin", url.Values{
		"email":    {"admin@shivam.com"},
		"password": {"admin123"},
	})
	resp.Body.Close()

	// JSON order listing for dashboard scripts.
	resp, err = client.Get(ts.URL + "/admin/api/orders")
	require.NoError(t, err)
	api := body(t, resp)
	assert.Contains(t, api, `"success":true`)
	assert.Contains(t, api, placed.RefNo)

	// AJAX callers get a JSON acknowledgement instead of a redirect.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/admin/order-complete/"+itoa(placed.Id), nil)
	require.NoError(t, err)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err = client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), `"success":true`)

	stored, err := orders.GetOrder(placed.Id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, stored.Status)

	req, err = http.NewRequest(http.MethodGet, ts.URL+"/admin/order-delete/"+itoa(placed.Id), nil)
	require.NoError(t, err)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err = client.Do(req)
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), `"success":true`)

	remaining, err := orders.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
