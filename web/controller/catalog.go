package controller

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/shivamstore/storefront/config"
	"github.com/shivamstore/storefront/database"
	"github.com/shivamstore/storefront/database/model"
	"github.com/shivamstore/storefront/logger"
	"github.com/shivamstore/storefront/web/service"

	"github.com/gin-gonic/gin"
)

// ProductForm is the multipart add/edit product request. The image
// arrives as a separate file part.
type ProductForm struct {
	Name        string  `form:"name"`
	Price       float64 `form:"price"`
	Category    string  `form:"category"`
	SubCategory string  `form:"subcategory"`
}

// CatalogController manages products, categories and subcategories.
// It is registered inside the admin-guarded route group.
type CatalogController struct {
	BaseController

	catalogService service.CatalogService
}

func NewCatalogController(g *gin.RouterGroup) *CatalogController {
	a := &CatalogController{}
	a.initRouter(g)
	return a
}

func (a *CatalogController) initRouter(g *gin.RouterGroup) {
	g.GET("/add-product", a.addProductPage)
	g.POST("/add-product", a.addProduct)
	g.GET("/edit-product/:id", a.editProductPage)
	g.POST("/edit-product/:id", a.editProduct)
	g.GET("/delete-product/:id", a.deleteProduct)

	g.GET("/categories", a.categories)
	g.POST("/categories", a.createCategory)
	g.GET("/subcategories/:categoryId", a.subCategories)
	g.POST("/subcategories/:categoryId", a.createSubCategory)
}

// storeImage saves the upload into the configured folder under its
// client-supplied base name. A later upload with the same name
// overwrites the earlier file.
func (a *CatalogController) storeImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := filepath.Base(file.Filename)
	dst := filepath.Join(config.GetUploadFolder(), filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filename, nil
}

func (a *CatalogController) addProductPage(c *gin.Context) {
	html(c, "add_product.html", "Add Product", gin.H{
		"categories": service.PredefinedCategories,
	})
}

func (a *CatalogController) addProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		htmlError(c, http.StatusBadRequest, "invalid form data")
		return
	}
	if form.Name == "" || form.Category == "" || form.SubCategory == "" {
		htmlError(c, http.StatusBadRequest, "name, category and subcategory are required")
		return
	}
	if form.Price <= 0 {
		htmlError(c, http.StatusBadRequest, "price must be a positive number")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		htmlError(c, http.StatusBadRequest, "product image is required")
		return
	}
	filename, err := a.storeImage(c, file)
	if err != nil {
		logger.Warning("store image failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not store image")
		return
	}

	category, err := a.catalogService.EnsureCategory(form.Category)
	if err != nil {
		logger.Warning("ensure category failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save product")
		return
	}
	subCategory, err := a.catalogService.EnsureSubCategory(form.SubCategory, category.Id)
	if err != nil {
		logger.Warning("ensure subcategory failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save product")
		return
	}

	product := &model.Product{
		Name:          form.Name,
		Price:         form.Price,
		Image:         filename,
		CategoryId:    category.Id,
		SubCategoryId: subCategory.Id,
	}
	if err := a.catalogService.AddProduct(product); err != nil {
		logger.Warning("add product failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *CatalogController) editProductPage(c *gin.Context) {
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
	html(c, "edit_product.html", "Edit Product", gin.H{"product": product})
}

func (a *CatalogController) editProduct(c *gin.Context) {
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

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		htmlError(c, http.StatusBadRequest, "invalid form data")
		return
	}
	if form.Name == "" {
		htmlError(c, http.StatusBadRequest, "name is required")
		return
	}
	if form.Price <= 0 {
		htmlError(c, http.StatusBadRequest, "price must be a positive number")
		return
	}

	product.Name = form.Name
	product.Price = form.Price

	// A new image is optional on edit.
	if file, err := c.FormFile("image"); err == nil {
		filename, err := a.storeImage(c, file)
		if err != nil {
			logger.Warning("store image failed:", err)
			htmlError(c, http.StatusInternalServerError, "could not store image")
			return
		}
		product.Image = filename
	}

	if err := a.catalogService.UpdateProduct(product); err != nil {
		logger.Warning("update product failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *CatalogController) deleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	err = a.catalogService.DeleteProduct(id)
	if database.IsNotFound(err) {
		htmlError(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		logger.Warning("delete product failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not delete product")
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *CatalogController) categories(c *gin.Context) {
	categories, err := a.catalogService.GetCategories()
	if err != nil {
		logger.Warning("list categories failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load categories")
		return
	}
	html(c, "categories.html", "Categories", gin.H{
		"categories": categories,
		"predefined": service.PredefinedCategories,
	})
}

func (a *CatalogController) createCategory(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		htmlError(c, http.StatusBadRequest, "category name is required")
		return
	}
	if _, err := a.catalogService.EnsureCategory(name); err != nil {
		logger.Warning("ensure category failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save category")
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}

func (a *CatalogController) subCategories(c *gin.Context) {
	categoryId, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := a.catalogService.GetCategory(categoryId)
	if err != nil {
		htmlError(c, http.StatusNotFound, "category not found")
		return
	}
	subCategories, err := a.catalogService.GetSubCategories(categoryId)
	if err != nil {
		logger.Warning("list subcategories failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not load subcategories")
		return
	}
	html(c, "subcategories.html", "Subcategories", gin.H{
		"category":      category,
		"subcategories": subCategories,
	})
}

func (a *CatalogController) createSubCategory(c *gin.Context) {
	categoryId, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		htmlError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	if _, err := a.catalogService.GetCategory(categoryId); err != nil {
		htmlError(c, http.StatusNotFound, "category not found")
		return
	}
	name := c.PostForm("name")
	if name == "" {
		htmlError(c, http.StatusBadRequest, "subcategory name is required")
		return
	}
	if _, err := a.catalogService.EnsureSubCategory(name, categoryId); err != nil {
		logger.Warning("ensure subcategory failed:", err)
		htmlError(c, http.StatusInternalServerError, "could not save subcategory")
		return
	}
	c.Redirect(http.StatusFound, "/admin/subcategories/"+strconv.Itoa(categoryId))
}
