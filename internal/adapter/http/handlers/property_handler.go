package handlers

import (
	"errors"
	"log"
	"net/http"

	request "offer_agent/internal/adapter/http/dto/request"
	response "offer_agent/internal/adapter/http/dto/response"
	"offer_agent/internal/usecase"
	"offer_agent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPropertyPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "URL is required", http.StatusBadRequest)
)

// PropertyHandler handles HTTP requests for listing extraction.
type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// ExtractProperty godoc
// @Summary      Extract a property from a listing URL
// @Tags         property
// @Accept       json
// @Produce      json
// @Param        body  body      request.PropertyExtractRequest  true  "Listing URL"
// @Success      200   {object}  response.PropertyCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/property/extract [post]
func (h *PropertyHandler) ExtractProperty(c *gin.Context) {
	var payload request.PropertyExtractRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveURL() == "" {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}
	log.Printf("[property][handler] extract start url=%s", payload.ResolveURL())

	p, err := h.usecase.ExtractFromURL(c.Request.Context(), payload.ResolveURL())
	if err != nil {
		log.Printf("[property][handler] extract failed url=%s err=%v", payload.ResolveURL(), err)
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[property][handler] extract success property_id=%s", p.ID)

	c.JSON(http.StatusOK, response.PropertyCreatedResponse{PropertyID: p.ID})
}

// GetProperty godoc
// @Summary      Get a property
// @Tags         property
// @Produce      json
// @Param        property_id  path      string  true  "Property ID"
// @Success      200          {object}  entities.Property
// @Failure      404          {object}  pkg.HTTPError
// @Router       /api/property/{property_id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("property_id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, p)
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListingURL), errors.Is(err, usecase.ErrInvalidPropertyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainError("EXTRACTION_FAILED", "Failed to extract property data", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
