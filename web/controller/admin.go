package controller

import (
	"net/http"
	"strconv"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/web/service"
	"github.com/shivamstore/storefront/web/session"

	"github.com/gin-gonic/gin"
)

// AdminController handles the admin login and the order lifecycle. The
// catalog management routes live in CatalogController, registered under
// the same guarded group.
type AdminController struct {
	BaseController

	userService    service.UserService
	catalogService service.CatalogService
	orderService   service.OrderService

	catalogController *CatalogController
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.GET("/admin", a.loginPage)
	g.POST("/admin", a.login)

	admin := g.Group("/admin")
	admin.Use(a.checkAdmin)

	admin.GET("/dashboard", a.dashboard)
	admin.GET("/orders", a.orders)
	admin.GET("/api/orders", a.apiOrders)
	admin.GET("/order-complete/:id", a.orderComplete)
	admin.GET("/order-delete/:id", a.orderDelete)

	a.catalogController = NewCatalogController(admin)
}

func (a *AdminController) loginPage(c *gin.Context) {
	if session.IsAdminLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/admin/dashboard")
		return
	}
	html(c, "admin_login.html", "Admin Login", nil)
}

func (a *AdminController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "admin_login.html", "Admin Login",
			gin.H{"error": "invalid form data"})
		return
	}
	if form.Email == "" || form.Password == "" {
		htmlStatus(c, http.StatusBadRequest, "admin_login.html", "Admin Login",
			gin.H{"error": "email and password are required"})
		return
	}

	admin := a.userService.CheckAdmin(form.Email, form.Password)
	if admin == nil {
		logger.Warningf("wrong admin login for %q, IP: %q", form.Email, getRemoteIp(c))
		htmlStatus(c, http.StatusUnauthorized, "admin_login.html", "Admin Login",
			gin.H{"error": "wrong email or password"})
		return
	}

	if err := session.SetAdminLogin(c); err != nil {
		logger.Warning("unable to save session:", err)
		htmlError(c, http.StatusInternalServerError, "login failed")
		return
	}

	logger.Infof("admin %s logged in, IP: %s", admin.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *AdminController) dashboard(c *gin.Context) {
	products, err := a.catalogService.GetProducts(0)
	if err != nil {
		logger.Warning("dashboard products failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load dashboard")
		return
	}
	orders, err := a.orderService.GetOrders()
	if err != nil {
		logger.Warning("dashboard orders failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load dashboard")
		return
	}
	categories, err := a.catalogService.GetCategories()
	if err != nil {
		logger.Warning("dashboard categories failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load dashboard")
		return
	}

	html(c, "admin_dashboard.html", "Dashboard", gin.H{
		"products":   products,
		"orders":     orders,
		"categories": categories,
	})
}

func (a *AdminController) orders(c *gin.Context) {
	orders, err := a.orderService.GetOrders()
	if err != nil {
		logger.Warning("list orders failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load orders")
		return
	}
	html(c, "admin_orders.html", "Orders", gin.H{"orders": orders})
}

// apiOrders serves the order listing as JSON for the dashboard scripts.
func (a *AdminController) apiOrders(c *gin.Context) {
	orders, err := a.orderService.GetOrders()
	jsonObj(c, orders, err)
}

func (a *AdminController) orderComplete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	err = a.orderService.MarkDelivered(id)
	if database.IsNotFound(err) {
		htmlError(c, http.StatusNotFound, "order not found")
		return
	}
	if isAjax(c) {
		jsonMsg(c, "mark order delivered", err)
		return
	}
	if err != nil {
		logger.Warning("mark delivered failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not update order")
		return
	}
	c.Redirect(http.StatusFound, "/admin/orders")
}

func (a *AdminController) orderDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	err = a.orderService.DeleteOrder(id)
	if database.IsNotFound(err) {
		htmlError(c, http.StatusNotFound, "order not found")
		return
	}
	if isAjax(c) {
		jsonMsg(c, "delete order", err)
		return
	}
	if err != nil {
		logger.Warning("delete order failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not delete order")
		return
	}
	c.Redirect(http.StatusFound, "/admin/orders")
}
