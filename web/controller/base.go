// Package controller provides the HTTP handlers of the store: the
// customer storefront and the admin panel.
package controller

import (
	"net/http"

	"github.com/shivamstore/storefront/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication checks shared by all
// controllers.
type BaseController struct{}

// checkLogin guards customer routes: without a logged-in customer the
// request is redirected to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// checkAdmin guards admin routes the same way against the admin login.
func (a *BaseController) checkAdmin(c *gin.Context) {
	if !session.IsAdminLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/admin")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
