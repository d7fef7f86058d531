package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:       req.Name,
		Code:       req.Code,
		Type:       enum.ProductType(req.Type),
		SaleUnit:   enum.SaleUnit(req.SaleUnit),
		CategoryID: req.CategoryID,
		Vendable:   req.Vendable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Active:     req.Active,
		Vendable:   req.Vendable,
	}
	if req.Type != nil {
		t := enum.ProductType(*req.Type)
		input.Type = &t
	}
	if req.SaleUnit != nil {
		u := enum.SaleUnit(*req.SaleUnit)
		input.SaleUnit = &u
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Get handles retrieving a product with its prices and costs
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// List handles listing products with filters
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:   filter.Search,
		Vendable: filter.Vendable,
		Active:   filter.Active,
	}

	if filter.CategoryID != "" {
		catID, err := uuid.Parse(filter.CategoryID)
		if err == nil {
			params.CategoryID = &catID
		}
	}
	if filter.Type != "" {
		t := enum.ProductType(filter.Type)
		params.Type = &t
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// ListVendable handles listing the sellable catalog for sale terminals
func (h *ProductHandler) ListVendable(c *gin.Context) {
	products, err := h.productService.ListVendable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendable products retrieved successfully", products)
}

// Delete handles deactivating a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// SetPrice handles creating or replacing a price line
func (h *ProductHandler) SetPrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	price, err := h.productService.SetPrice(c.Request.Context(), id, &service.PriceInput{
		SaleSpaceID: req.SaleSpaceID,
		SaleUnit:    enum.SaleUnit(req.SaleUnit),
		AmountUSD:   req.AmountUSD,
		AmountCDF:   req.AmountCDF,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price set successfully", price)
}

// DeletePrice handles removing a price line
func (h *ProductHandler) DeletePrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	priceID, err := uuid.Parse(c.Param("priceId"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.productService.DeletePrice(c.Request.Context(), id, priceID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price deleted successfully", nil)
}

// SetCost handles creating or replacing a cost line
func (h *ProductHandler) SetCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.SetCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cost, err := h.productService.SetCost(c.Request.Context(), id, &service.CostInput{
		SaleUnit:  enum.SaleUnit(req.SaleUnit),
		AmountUSD: req.AmountUSD,
		AmountCDF: req.AmountCDF,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cost set successfully", cost)
}

// DeleteCost handles removing a cost line
func (h *ProductHandler) DeleteCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	costID, err := uuid.Parse(c.Param("costId"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.productService.DeleteCost(c.Request.Context(), id, costID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cost deleted successfully", nil)
}
