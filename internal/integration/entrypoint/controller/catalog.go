// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/usecase/catalog"
	domainerror "github.com/shoplist/backend/internal/domain/error"
	"github.com/shoplist/backend/internal/integration/entrypoint/dto"
	"github.com/shoplist/backend/internal/integration/entrypoint/middleware"
)

// CatalogController handles product catalog endpoints.
type CatalogController struct {
	createUseCase  *catalog.CreateCatalogItemUseCase
	searchUseCase  *catalog.SearchCatalogUseCase
	popularUseCase *catalog.PopularItemsUseCase
	deleteUseCase  *catalog.DeleteCatalogItemUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	createUseCase *catalog.CreateCatalogItemUseCase,
	searchUseCase *catalog.SearchCatalogUseCase,
	popularUseCase *catalog.PopularItemsUseCase,
	deleteUseCase *catalog.DeleteCatalogItemUseCase,
) *CatalogController {
	return &CatalogController{
		createUseCase:  createUseCase,
		searchUseCase:  searchUseCase,
		popularUseCase: popularUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /catalog/items requests.
func (c *CatalogController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateCatalogItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCatalogFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), catalog.CreateCatalogItemInput{
		UserID:       userID,
		Name:         req.Name,
		CategoryPath: req.CategoryPath,
		DefaultUnit:  req.DefaultUnit,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCatalogItemResponse(output.Item))
}

// Search handles GET /catalog/items requests.
func (c *CatalogController) Search(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), catalog.SearchCatalogInput{
		Query: ctx.Query("q"),
		Limit: limit,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogItemListResponse(output.Items))
}

// Popular handles GET /catalog/items/popular requests.
func (c *CatalogController) Popular(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	output, err := c.popularUseCase.Execute(ctx.Request.Context(), catalog.PopularItemsInput{
		Limit: limit,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogItemListResponse(output.Items))
}

// Delete handles DELETE /catalog/items/:id requests.
func (c *CatalogController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid catalog item ID",
			Code:  string(domainerror.ErrCodeMissingCatalogFields),
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), catalog.DeleteCatalogItemInput{
		ItemID: itemID,
		UserID: userID,
	}); err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCatalogError handles catalog errors and returns appropriate HTTP responses.
func (c *CatalogController) handleCatalogError(ctx *gin.Context, err error) {
	var catalogErr *domainerror.CatalogError
	if errors.As(err, &catalogErr) {
		ctx.JSON(getStatusCodeForCatalogError(catalogErr.Code), dto.ErrorResponse{
			Error: catalogErr.Message,
			Code:  string(catalogErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCatalogError maps catalog error codes to HTTP status codes.
func getStatusCodeForCatalogError(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeCatalogItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCatalogItemNameRequired,
		domainerror.ErrCodeMissingCatalogFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeCatalogItemExists,
		domainerror.ErrCodeCatalogItemInUse:
		return http.StatusConflict
	case domainerror.ErrCodeNotCatalogAdmin:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
