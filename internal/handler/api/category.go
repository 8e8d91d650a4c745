package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type CategoryHandler struct {
	categoryCommands commands.CategoryCommands
	categoryQueries  queries.CategoryQueries
}

func NewCategoryHandler(categoryCommands commands.CategoryCommands, categoryQueries queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{
		categoryCommands: categoryCommands,
		categoryQueries:  categoryQueries,
	}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categoriesRM, err := h.categoryQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryViews(categoriesRM))
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	categoryRM, err := h.categoryQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryView(categoryRM))
}

// @Summary Create category
// @Description Add an apartment category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	categoryRM, err := h.categoryCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCategoryView(categoryRM))
}

// @Summary Update category
// @Description Rename or re-describe a category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	var req reqdto.UpdateCategoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	categoryRM, err := h.categoryCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryView(categoryRM))
}

// @Summary Delete category
// @Description Remove an unused category (admin only)
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	if err := h.categoryCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeCategoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) writeCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrCategoryExists):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category name already exists",
		})
	case errors.Is(err, commands.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category is referenced by apartments",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Category validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
