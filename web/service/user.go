// Package service implements the business logic of the store on top of
// the database package.
package service

import (
	"errors"
	"strings"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/util/common"
	"github.com/shivamstore/storefront/util/crypto"
)

// ErrEmailTaken is returned when a registration email is already in use.
var ErrEmailTaken = errors.New("email already registered")

type UserService struct{}

// Register creates a customer with a bcrypt-hashed password. A duplicate
// email surfaces as ErrEmailTaken, never as a raw storage error.
func (s *UserService) Register(name, email, password string) (*model.User, error) {
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
	}
	err = database.GetDB().Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the customer when the credentials match, nil otherwise.
func (s *UserService) CheckUser(email, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// CheckAdmin returns the admin when the credentials match, nil otherwise.
func (s *UserService) CheckAdmin(email, password string) *model.Admin {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(admin).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check admin err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(admin.Password, password) {
		return nil
	}
	return admin
}

// GetFirstAdmin is used by the CLI to show the seeded credential.
func (s *UserService) GetFirstAdmin() (*model.Admin, error) {
	admin := &model.Admin{}
	err := database.GetDB().Model(model.Admin{}).First(admin).Error
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateAdmin replaces the admin credential, hashing the new password.
func (s *UserService) UpdateAdmin(email, password string) error {
	if email == "" {
		return common.NewError("email can not be empty")
	} else if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	admin := &model.Admin{}
	err = db.Model(model.Admin{}).First(admin).Error
	if database.IsNotFound(err) {
		admin.Email = email
		admin.Password = hash
		return db.Create(admin).Error
	} else if err != nil {
		return err
	}
	admin.Email = email
	admin.Password = hash
	return db.Save(admin).Error
}
