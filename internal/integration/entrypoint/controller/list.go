// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/usecase/list"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
	"github.com/shoplist/backend/internal/integration/entrypoint/dto"
	"github.com/shoplist/backend/internal/integration/entrypoint/middleware"
)

// ListController handles shopping list endpoints.
type ListController struct {
	createUseCase    *list.CreateListUseCase
	getUseCase       *list.GetListUseCase
	listUseCase      *list.ListListsUseCase
	updateUseCase    *list.UpdateListUseCase
	deleteUseCase    *list.DeleteListUseCase
	addEntryUseCase  *list.AddEntryUseCase
	updEntryUseCase  *list.UpdateEntryUseCase
	rmEntryUseCase   *list.RemoveEntryUseCase
	toggleAllUseCase *list.ToggleAllEntriesUseCase
	shareUseCase     *list.ShareListUseCase
	unshareUseCase   *list.UnshareListUseCase
}

// NewListController creates a new list controller instance.
func NewListController(
	createUseCase *list.CreateListUseCase,
	getUseCase *list.GetListUseCase,
	listUseCase *list.ListListsUseCase,
	updateUseCase *list.UpdateListUseCase,
	deleteUseCase *list.DeleteListUseCase,
	addEntryUseCase *list.AddEntryUseCase,
	updEntryUseCase *list.UpdateEntryUseCase,
	rmEntryUseCase *list.RemoveEntryUseCase,
	toggleAllUseCase *list.ToggleAllEntriesUseCase,
	shareUseCase *list.ShareListUseCase,
	unshareUseCase *list.UnshareListUseCase,
) *ListController {
	return &ListController{
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		addEntryUseCase:  addEntryUseCase,
		updEntryUseCase:  updEntryUseCase,
		rmEntryUseCase:   rmEntryUseCase,
		toggleAllUseCase: toggleAllUseCase,
		shareUseCase:     shareUseCase,
		unshareUseCase:   unshareUseCase,
	}
}

// Create handles POST /lists requests.
func (c *ListController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), list.CreateListInput{
		OwnerID:  userID,
		Name:     req.Name,
		Priority: entity.ListPriority(req.Priority),
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToListResponse(output.List, entity.AccessOwner))
}

// List handles GET /lists requests.
func (c *ListController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), list.ListListsInput{UserID: userID})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	resp := dto.ListCollectionResponse{
		Owned:  make([]dto.ListSummaryResponse, len(output.Owned)),
		Shared: make([]dto.ListSummaryResponse, len(output.Shared)),
	}
	for i, l := range output.Owned {
		resp.Owned[i] = dto.ToListSummaryResponse(l)
	}
	for i, l := range output.Shared {
		resp.Shared[i] = dto.ToListSummaryResponse(l)
	}

	ctx.JSON(http.StatusOK, resp)
}

// Get handles GET /lists/:id requests.
func (c *ListController) Get(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), list.GetListInput{
		ListID: listID,
		UserID: userID,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListResponse(output.List, output.Access))
}

// Update handles PATCH /lists/:id requests.
func (c *ListController) Update(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	var req dto.UpdateListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	input := list.UpdateListInput{
		ListID: listID,
		UserID: userID,
		Name:   req.Name,
	}
	if req.Priority != nil {
		priority := entity.ListPriority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListResponse(output.List, entity.EvaluateAccess(output.List, userID)))
}

// Delete handles DELETE /lists/:id requests.
func (c *ListController) Delete(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), list.DeleteListInput{
		ListID: listID,
		UserID: userID,
	}); err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddEntry handles POST /lists/:id/entries requests.
func (c *ListController) AddEntry(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	var req dto.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	input := list.AddEntryInput{
		ListID: listID,
		UserID: userID,
		Request: list.ResolveEntryRequest{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
			Notes:    req.Notes,
		},
	}
	if req.CatalogItemID != nil {
		catalogItemID, err := uuid.Parse(*req.CatalogItemID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid catalog item ID",
				Code:  string(domainerror.ErrCodeMissingListFields),
			})
			return
		}
		input.Request.CatalogItemID = &catalogItemID
	}

	output, err := c.addEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(&output.Entry))
}

// UpdateEntry handles PATCH /lists/:id/entries/:entryId requests.
func (c *ListController) UpdateEntry(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	entryID, ok := c.pathEntryID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	output, err := c.updEntryUseCase.Execute(ctx.Request.Context(), list.UpdateEntryInput{
		ListID:  listID,
		EntryID: entryID,
		UserID:  userID,
		Patch: entity.EntryPatch{
			Quantity:    req.Quantity,
			Unit:        req.Unit,
			Notes:       req.Notes,
			IsPurchased: req.IsPurchased,
		},
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(&output.Entry))
}

// RemoveEntry handles DELETE /lists/:id/entries/:entryId requests.
func (c *ListController) RemoveEntry(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	entryID, ok := c.pathEntryID(ctx)
	if !ok {
		return
	}

	if _, err := c.rmEntryUseCase.Execute(ctx.Request.Context(), list.RemoveEntryInput{
		ListID:  listID,
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleAllEntries handles POST /lists/:id/entries/toggle-all requests.
func (c *ListController) ToggleAllEntries(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	var req dto.ToggleAllRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.IsPurchased == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	output, err := c.toggleAllUseCase.Execute(ctx.Request.Context(), list.ToggleAllEntriesInput{
		ListID:      listID,
		UserID:      userID,
		IsPurchased: *req.IsPurchased,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListResponse(output.List, entity.EvaluateAccess(output.List, userID)))
}

// Share handles POST /lists/:id/shares requests.
func (c *ListController) Share(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	var req dto.ShareListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	output, err := c.shareUseCase.Execute(ctx.Request.Context(), list.ShareListInput{
		ListID:          listID,
		UserID:          userID,
		GranteeUsername: req.Username,
		PermissionLevel: entity.PermissionLevel(req.PermissionLevel),
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListResponse(output.List, entity.AccessOwner))
}

// Unshare handles DELETE /lists/:id/shares/:userId requests.
func (c *ListController) Unshare(ctx *gin.Context) {
	userID, listID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}

	granteeID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return
	}

	if _, err := c.unshareUseCase.Execute(ctx.Request.Context(), list.UnshareListInput{
		ListID:        listID,
		UserID:        userID,
		GranteeUserID: granteeID,
	}); err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// pathIDs extracts the authenticated user ID and the list ID path param.
func (c *ListController) pathIDs(ctx *gin.Context) (userID, listID uuid.UUID, ok bool) {
	userID, authed := middleware.GetUserIDFromContext(ctx)
	if !authed {
		respondUnauthorized(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid list ID",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, listID, true
}

// pathEntryID extracts the entry ID path param.
func (c *ListController) pathEntryID(ctx *gin.Context) (uuid.UUID, bool) {
	entryID, err := uuid.Parse(ctx.Param("entryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
			Code:  string(domainerror.ErrCodeMissingListFields),
		})
		return uuid.Nil, false
	}
	return entryID, true
}

// handleListError handles list errors and returns appropriate HTTP responses.
func (c *ListController) handleListError(ctx *gin.Context, err error) {
	var listErr *domainerror.ListError
	if errors.As(err, &listErr) {
		ctx.JSON(getStatusCodeForListError(listErr.Code), dto.ErrorResponse{
			Error: listErr.Message,
			Code:  string(listErr.Code),
		})
		return
	}

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

// getStatusCodeForListError maps list error codes to HTTP status codes.
func getStatusCodeForListError(code domainerror.ListErrorCode) int {
	switch code {
	case domainerror.ErrCodeListNotFound,
		domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeGranteeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeListNameRequired,
		domainerror.ErrCodeListNameTooLong,
		domainerror.ErrCodeInvalidPriority,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeEntryNameRequired,
		domainerror.ErrCodeEntryCatalogLocked,
		domainerror.ErrCodeInvalidPermissionLevel,
		domainerror.ErrCodeCannotShareWithOwner,
		domainerror.ErrCodeMissingListFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeListConflict:
		return http.StatusConflict
	case domainerror.ErrCodeListAccessDenied,
		domainerror.ErrCodeNotListOwner:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthorized writes the response for requests missing auth context.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
