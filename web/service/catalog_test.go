package service

import (
	"testing"

	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"

	"github.com/stretchr/testify/assert"
)

func TestEnsureCategoryIsIdempotent(t *testing.T) {
	setup()
	defer teardown()

	service := CatalogService{}

	first, err := service.EnsureCategory("Spices")
	assert.NoError(t, err)
	second, err := service.EnsureCategory("Spices")
	assert.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	var count int64
	database.GetDB().Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnsureSubCategoryScopedToParent(t *testing.T) {
	setup()
	defer teardown()

	service := CatalogService{}

	spices, _ := service.EnsureCategory("Spices")
	fruits, _ := service.EnsureCategory("Fruits")

	a, err := service.EnsureSubCategory("Organic", spices.Id)
	assert.NoError(t, err)
	b, err := service.EnsureSubCategory("Organic", spices.Id)
	assert.NoError(t, err)
	assert.Equal(t, a.Id, b.Id)

	// Same name under another parent is a distinct row.
	c, err := service.EnsureSubCategory("Organic", fruits.Id)
	assert.NoError(t, err)
	assert.NotEqual(t, a.Id, c.Id)

	var count int64
	database.GetDB().Model(&model.SubCategory{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestGetProductsFilterByCategory(t *testing.T) {
	setup()
	defer teardown()

	service := CatalogService{}

	spices, _ := service.EnsureCategory("Spices")
	fruits, _ := service.EnsureCategory("Fruits")
	sub, _ := service.EnsureSubCategory("Misc", spices.Id)

	assert.NoError(t, service.AddProduct(&model.Product{
		Name: "Turmeric", Price: 3.5, CategoryId: spices.Id, SubCategoryId: sub.Id,
	}))
	assert.NoError(t, service.AddProduct(&model.Product{
		Name: "Cumin", Price: 2.0, CategoryId: spices.Id, SubCategoryId: sub.Id,
	}))
	assert.NoError(t, service.AddProduct(&model.Product{
		Name: "Mango", Price: 5.0, CategoryId: fruits.Id,
	}))

	all, err := service.GetProducts(0)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := service.GetProducts(spices.Id)
	assert.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, spices.Id, p.CategoryId)
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	setup()
	defer teardown()

	service := CatalogService{}

	product := &model.Product{Name: "Milk", Price: 1.0}
	assert.NoError(t, service.AddProduct(product))

	product.Price = 1.5
	assert.NoError(t, service.UpdateProduct(product))

	got, err := service.GetProduct(product.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, got.Price)

	assert.NoError(t, service.DeleteProduct(product.Id))
	_, err = service.GetProduct(product.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteMissingProductIsNotFound(t *testing.T) {
	setup()
	defer teardown()

	service := CatalogService{}
	err := service.DeleteProduct(12345)
	assert.True(t, database.IsNotFound(err))
}
