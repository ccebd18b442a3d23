package controller

import (
	"errors"
	"net/http"

	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/web/service"
	"github.com/shivamstore/storefront/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the customer registration request.
type RegisterForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginForm is the customer login request.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// IndexController handles the root redirect, registration, login and
// logout of customers.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/login")
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "register.html", "Register",
			gin.H{"error": "invalid form data"})
		return
	}
	if form.Name == "" || form.Email == "" || form.Password == "" {
		htmlStatus(c, http.StatusBadRequest, "register.html", "Register",
			gin.H{"error": "name, email and password are required"})
		return
	}

	_, err := a.userService.Register(form.Name, form.Email, form.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		htmlStatus(c, http.StatusConflict, "register.html", "Register",
			gin.H{"error": "that email is already registered"})
		return
	}
	if err != nil {
		logger.Warning("register failed:", err)
		htmlError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/products")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login authenticates the customer and starts a fresh session with an
// empty cart.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "login.html", "Login",
			gin.H{"error": "invalid form data"})
		return
	}
	if form.Email == "" || form.Password == "" {
		htmlStatus(c, http.StatusBadRequest, "login.html", "Login",
			gin.H{"error": "email and password are required"})
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("wrong login for %q, IP: %q", form.Email, getRemoteIp(c))
		htmlStatus(c, http.StatusUnauthorized, "login.html", "Login",
			gin.H{"error": "wrong email or password"})
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		htmlError(c, http.StatusInternalServerError, "login failed")
		return
	}

	logger.Infof("%s logged in, IP: %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/products")
}

func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/login")
}
