package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type ApartmentHandler struct {
	apartmentCommands commands.ApartmentCommands
	apartmentQueries  queries.ApartmentQueries
	searchQueries     queries.SearchQueries
}

func NewApartmentHandler(
	apartmentCommands commands.ApartmentCommands,
	apartmentQueries queries.ApartmentQueries,
	searchQueries queries.SearchQueries,
) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentCommands: apartmentCommands,
		apartmentQueries:  apartmentQueries,
		searchQueries:     searchQueries,
	}
}

// @Summary List apartments
// @Description List apartments, optionally filtered by category and availability
// @Tags apartments
// @Produce json
// @Param category query string false "Category ID"
// @Param isAvailable query bool false "Availability filter"
// @Success 200 {array} resdto.ApartmentResponse
// @Router /apartments [get]
func (h *ApartmentHandler) ListApartments(c *gin.Context) {
	var filter queries.ApartmentFilter

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category ID format",
			})
			return
		}
		filter.CategoryID = &categoryID
	}
	if availStr := c.Query("isAvailable"); availStr != "" {
		avail, err := strconv.ParseBool(availStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability filter",
			})
			return
		}
		filter.IsAvailable = &avail
	}

	apartmentsRM, err := h.apartmentQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentViews(apartmentsRM))
}

// @Summary Get apartment
// @Description Get apartment by ID
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.ApartmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /apartments/{id} [get]
func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	apartmentRM, err := h.apartmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrApartmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Apartment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentView(apartmentRM))
}

// @Summary Search apartments
// @Description Full-text and faceted apartment search with pagination
// @Tags apartments
// @Produce json
// @Param query query string false "Free-text query over title and description (alias: q)"
// @Param location query string false "Location substring"
// @Param category query string false "Category id or name"
// @Param minPrice query int false "Minimum price in cents"
// @Param maxPrice query int false "Maximum price in cents"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query int false "Minimum bathrooms"
// @Param minCapacity query int false "Minimum capacity"
// @Param maxCapacity query int false "Maximum capacity"
// @Param isAvailable query bool false "Availability filter"
// @Param amenities query []string false "Required amenities"
// @Param sortBy query string false "Sort column (price, bedrooms, capacity, title, created_at)"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.SearchResponse
// @Router /apartments/search [get]
func (h *ApartmentHandler) SearchApartments(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.searchQueries.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = queries.DefaultSearchLimit
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result, page, limit))
}

// @Summary Create apartment
// @Description Add an apartment to the catalog (admin only)
// @Tags apartments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateApartmentRequest true "Apartment"
// @Success 201 {object} resdto.ApartmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/apartments [post]
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	var req reqdto.CreateApartmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	apartmentRM, err := h.apartmentCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeApartmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromApartmentView(apartmentRM))
}

// @Summary Update apartment
// @Description Partially update an apartment (admin only)
// @Tags apartments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Param request body reqdto.UpdateApartmentRequest true "Fields to change"
// @Success 200 {object} resdto.ApartmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/apartments/{id} [put]
func (h *ApartmentHandler) UpdateApartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	var req reqdto.UpdateApartmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	apartmentRM, err := h.apartmentCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeApartmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentView(apartmentRM))
}

// @Summary Delete apartment
// @Description Remove an apartment without active bookings (admin only)
// @Tags apartments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/apartments/{id} [delete]
func (h *ApartmentHandler) DeleteApartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	if err := h.apartmentCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeApartmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ApartmentHandler) writeApartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrApartmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Apartment not found",
		})
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrApartmentHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Apartment has active bookings",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Apartment validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseSearchParams(c *gin.Context) (queries.SearchParams, error) {
	params := queries.SearchParams{
		Query:     firstQuery(c, "query", "q"),
		Location:  c.Query("location"),
		Category:  c.Query("category"),
		Amenities: c.QueryArray("amenities"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	var err error
	if params.MinPrice, err = queryInt64(c, "minPrice"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = queryInt64(c, "maxPrice"); err != nil {
		return params, err
	}
	if params.Bedrooms, err = queryInt(c, "bedrooms"); err != nil {
		return params, err
	}
	if params.Bathrooms, err = queryInt(c, "bathrooms"); err != nil {
		return params, err
	}
	if params.MinCapacity, err = queryInt(c, "minCapacity"); err != nil {
		return params, err
	}
	if params.MaxCapacity, err = queryInt(c, "maxCapacity"); err != nil {
		return params, err
	}
	if availStr := c.Query("isAvailable"); availStr != "" {
		avail, parseErr := strconv.ParseBool(availStr)
		if parseErr != nil {
			return params, errors.New("invalid isAvailable value")
		}
		params.IsAvailable = &avail
	}
	if pageStr := c.Query("page"); pageStr != "" {
		if params.Page, err = strconv.Atoi(pageStr); err != nil {
			return params, errors.New("invalid page value")
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if params.Limit, err = strconv.Atoi(limitStr); err != nil {
			return params, errors.New("invalid limit value")
		}
	}
	return params, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.New("invalid " + name + " value")
	}
	return &v, nil
}

func queryInt64(c *gin.Context, name string) (*int64, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + name + " value")
	}
	return &v, nil
}
