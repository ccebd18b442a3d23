// Package session wraps the gin cookie session. Controllers read the
// logged-in customer, the admin flag and the cart from here at request
// entry and write them back after mutation; no ambient globals.
package session

import (
	"encoding/gob"

	"github.com/shivamstore/storefront/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser  = "LOGIN_USER"
	adminLogin = "ADMIN_LOGIN"
	cartKey    = "CART"
)

func init() {
	gob.Register(model.User{})
	gob.Register(Cart{})
}

// SetLoginUser stores the customer and resets the cart, matching the
// login contract: a fresh session always starts with an empty cart.
// The password hash never enters the cookie; it is signed, not
// encrypted.
func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, model.User{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	})
	s.Set(cartKey, Cart{})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func SetAdminLogin(c *gin.Context) error {
	s := sessions.Default(c)
	s.Set(adminLogin, true)
	return s.Save()
}

func IsAdminLogin(c *gin.Context) bool {
	s := sessions.Default(c)
	if obj := s.Get(adminLogin); obj != nil {
		if admin, ok := obj.(bool); ok {
			return admin
		}
	}
	return false
}

// GetCart returns the session cart. A missing cart is an empty cart,
// never an error.
func GetCart(c *gin.Context) Cart {
	s := sessions.Default(c)
	if obj := s.Get(cartKey); obj != nil {
		if cart, ok := obj.(Cart); ok {
			return cart
		}
	}
	return Cart{}
}

func SaveCart(c *gin.Context, cart Cart) error {
	s := sessions.Default(c)
	s.Set(cartKey, cart)
	return s.Save()
}

func ClearCart(c *gin.Context) error {
	return SaveCart(c, Cart{})
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
