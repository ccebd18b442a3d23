package service

import (
	"strings"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"

	"gorm.io/gorm/clause"
)

// PredefinedCategories seeds the admin product form dropdown.
var PredefinedCategories = []string{
	"Grains & Pulses", "Spices", "Cooking Oil & Ghee", "Sugar & Sweeteners",
	"Beverages", "Dairy Products", "Fruits", "Vegetables",
	"Snacks & Biscuits", "Instant Food", "Bakery Items", "Frozen Foods",
	"Dry Fruits & Nuts", "Personal Care", "Household Cleaning",
	"Baby Care", "Pet Food", "Stationery", "Pooja Items", "Others",
}

type CatalogService struct{}

// EnsureCategory finds the category by exact name or creates it. The
// insert is ON CONFLICT DO NOTHING against the unique name index, so
// concurrent identical requests cannot create duplicate rows.
func (s *CatalogService) EnsureCategory(name string) (*model.Category, error) {
	db := database.GetDB()
	name = strings.TrimSpace(name)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Category{Name: name}).Error
	if err != nil && !database.IsDuplicate(err) {
		return nil, err
	}

	category := &model.Category{}
	err = db.Where("name = ?", name).First(category).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// EnsureSubCategory is EnsureCategory scoped to one parent category.
func (s *CatalogService) EnsureSubCategory(name string, categoryId int) (*model.SubCategory, error) {
	db := database.GetDB()
	name = strings.TrimSpace(name)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SubCategory{Name: name, CategoryId: categoryId}).Error
	if err != nil && !database.IsDuplicate(err) {
		return nil, err
	}

	subCategory := &model.SubCategory{}
	err = db.Where("name = ? AND category_id = ?", name, categoryId).
		First(subCategory).Error
	if err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (s *CatalogService) GetCategories() ([]model.Category, error) {
	var categories []model.Category
	err := database.GetDB().Order("name").Find(&categories).Error
	return categories, err
}

func (s *CatalogService) GetCategory(id int) (*model.Category, error) {
	category := &model.Category{}
	err := database.GetDB().First(category, id).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) GetSubCategories(categoryId int) ([]model.SubCategory, error) {
	var subCategories []model.SubCategory
	err := database.GetDB().
		Where("category_id = ?", categoryId).
		Order("name").
		Find(&subCategories).Error
	return subCategories, err
}

// GetProducts lists the catalog. categoryId 0 means no filter.
func (s *CatalogService) GetProducts(categoryId int) ([]model.Product, error) {
	db := database.GetDB()
	var products []model.Product
	if categoryId > 0 {
		db = db.Where("category_id = ?", categoryId)
	}
	err := db.Find(&products).Error
	return products, err
}

func (s *CatalogService) GetProduct(id int) (*model.Product, error) {
	product := &model.Product{}
	err := database.GetDB().First(product, id).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) AddProduct(product *model.Product) error {
	return database.GetDB().Create(product).Error
}

func (s *CatalogService) UpdateProduct(product *model.Product) error {
	return database.GetDB().Save(product).Error
}

// DeleteProduct removes the row, reporting NotFound for unknown ids
// instead of a silent success.
func (s *CatalogService) DeleteProduct(id int) error {
	result := database.GetDB().Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
