// Package model defines the persistent entities of the store:
// customers, the admin credential, the category taxonomy, products and
// orders with their line snapshots.
package model

import "time"

// User is a registered customer. The password column holds a bcrypt
// hash, never the raw password.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex"`
	Password string `json:"-" form:"password"`
}

// Admin is the panel credential, seeded once at first startup.
type Admin struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex"`
	Password string `json:"-" form:"password"`
}

type Category struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" form:"name" gorm:"uniqueIndex;not null"`
}

// SubCategory belongs to exactly one Category. The composite unique
// index makes find-or-create race-free at the storage layer.
type SubCategory struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" form:"name" gorm:"uniqueIndex:idx_subcategory_name_category;not null"`
	CategoryId int    `json:"categoryId" form:"categoryId" gorm:"uniqueIndex:idx_subcategory_name_category"`
}

type Product struct {
	Id            int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string  `json:"name" form:"name"`
	Price         float64 `json:"price" form:"price"`
	Image         string  `json:"image"`
	CategoryId    int     `json:"categoryId" form:"categoryId"`
	SubCategoryId int     `json:"subCategoryId" form:"subCategoryId"`
}

// Order statuses. Delivery is one-way, there is no reversal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
)

// Order is a completed checkout. Items keeps the comma-joined product
// names for cheap listing; Lines carries the structured per-item
// snapshot so historical orders stay traceable when products change.
type Order struct {
	Id            int         `json:"id" gorm:"primaryKey;autoIncrement"`
	RefNo         string      `json:"refNo" gorm:"uniqueIndex"`
	UserName      string      `json:"userName"`
	Items         string      `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status" gorm:"default:Pending"`
	CreatedAt     time.Time   `json:"createdAt"`
	Lines         []OrderLine `json:"lines" gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
}

// OrderLine snapshots one cart line at checkout time. Name and Price
// are copied from the product, not referenced, so later edits to the
// catalog do not rewrite history.
type OrderLine struct {
	Id        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderId   int     `json:"orderId" gorm:"index"`
	ProductId int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}
