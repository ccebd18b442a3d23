package controller

import (
	"net/http"
	"strconv"

	"github.com/shivamstore/storefront/config"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/web/service"
	"github.com/shivamstore/storefront/web/session"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// ShopController serves the customer-facing catalog, cart and checkout.
type ShopController struct {
	BaseController

	catalogService service.CatalogService
	orderService   service.OrderService
}

func NewShopController(g *gin.RouterGroup) *ShopController {
	a := &ShopController{}
	a.initRouter(g)
	return a
}

func (a *ShopController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/")
	g.Use(a.checkLogin)

	g.GET("/products", a.products)
	g.POST("/add-to-cart/:id", a.addToCart)
	g.GET("/cart", a.cart)
	g.POST("/place-order", a.placeOrder)
	g.GET("/payment-qr", a.paymentQr)
	g.GET("/payment-qr.png", a.paymentQrImage)
}

// products lists the catalog, optionally filtered by ?category=N.
func (a *ShopController) products(c *gin.Context) {
	categoryId := 0
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			htmlError(c, http.StatusBadRequest, "invalid category id")
			return
		}
		categoryId = id
	}

	products, err := a.catalogService.GetProducts(categoryId)
	if err != nil {
		logger.Warning("list products failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load products")
		return
	}
	categories, err := a.catalogService.GetCategories()
	if err != nil {
		logger.Warning("list categories failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load products")
		return
	}

	cart := session.GetCart(c)
	html(c, "products.html", "Products", gin.H{
		"products":   products,
		"categories": categories,
		"selected":   categoryId,
		"user":       session.GetLoginUser(c),
		"cartLen":    cart.Len(),
	})
}

// addToCart snapshots the product into the session cart.
func (a *ShopController) addToCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := a.catalogService.GetProduct(id)
	if err != nil {
		htmlError(c, http.StatusNotFound, "product not found")
		return
	}

	cart := session.GetCart(c)
	cart.AddItem(product)
	if err := session.SaveCart(c, cart); err != nil {
		logger.Warning("unable to save cart:", err)
		htmlError(c, http.StatusInternalServerError, "could not update cart")
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (a *ShopController) cart(c *gin.Context) {
	cart := session.GetCart(c)
	html(c, "cart.html", "Your Cart", gin.H{
		"cart":  cart.Items,
		"total": cart.Total(),
		"user":  session.GetLoginUser(c),
	})
}

// placeOrder converts the cart into a persisted order. The cart is
// cleared only after the order transaction commits; a failed write
// leaves the cart untouched.
func (a *ShopController) placeOrder(c *gin.Context) {
	payment := c.PostForm("payment")
	if payment == "" {
		htmlError(c, http.StatusBadRequest, "payment method is required")
		return
	}

	cart := session.GetCart(c)
	if cart.IsEmpty() {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	user := session.GetLoginUser(c)
	order, err := a.orderService.PlaceOrder(user.Name, cart, payment)
	if err != nil {
		logger.Warning("place order failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not place order")
		return
	}

	if err := session.ClearCart(c); err != nil {
		// The order is committed; an unsaved cookie only means the
		// customer sees a stale cart until the next write.
		logger.Warning("unable to clear cart:", err)
	}

	logger.Infof("order %s placed by %s, total %.2f", order.RefNo, user.Email, order.Total)
	c.Redirect(http.StatusFound, "/payment-qr")
}

func (a *ShopController) paymentQr(c *gin.Context) {
	html(c, "payment_qr.html", "Payment", gin.H{
		"user": session.GetLoginUser(c),
	})
}

// paymentQrImage renders the static payment QR code as PNG.
func (a *ShopController) paymentQrImage(c *gin.Context) {
	png, err := qrcode.Encode(config.GetPaymentAddress(), qrcode.Medium, 256)
	if err != nil {
		logger.Warning("qr encode failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
