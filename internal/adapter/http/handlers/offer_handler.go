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
	errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
)

// OfferHandler handles HTTP requests for offers and their letters.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

// CreateOffer godoc
// @Summary      Create an offer and generate its letter
// @Tags         offer
// @Accept       json
// @Produce      json
// @Param        body  body      request.OfferCreateRequest  true  "Offer form"
// @Success      200   {object}  response.OfferCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/offer/create [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.OfferCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[offer][handler] invalid payload err=%v", err)
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[offer][handler] create failed err=%v", err)
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[offer][handler] create success offer_id=%s status=%s", offer.ID, offer.Status)

	c.JSON(http.StatusOK, response.OfferCreatedResponse{OfferID: offer.ID})
}

// GetOffer godoc
// @Summary      Get an offer with its property
// @Tags         offer
// @Produce      json
// @Param        offer_id  path      string  true  "Offer ID"
// @Success      200       {object}  response.OfferResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /api/offer/{offer_id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	details, err := h.usecase.GetByID(c.Request.Context(), c.Param("offer_id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOfferDetails(details))
}

// DownloadOffer godoc
// @Summary      Download the offer letter
// @Description  Requires a completed download payment or an active subscription.
// @Tags         offer
// @Produce      application/pdf
// @Param        offer_id  path  string  true  "Offer ID"
// @Success      200
// @Success      307
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/offer/{offer_id}/download [get]
func (h *OfferHandler) DownloadOffer(c *gin.Context) {
	offerID := c.Param("offer_id")
	log.Printf("[offer][handler] download start offer_id=%s", offerID)

	dl, err := h.usecase.Download(c.Request.Context(), offerID)
	if err != nil {
		log.Printf("[offer][handler] download failed offer_id=%s err=%v", offerID, err)
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch dl.Kind {
	case usecase.DownloadRedirect:
		c.Redirect(http.StatusTemporaryRedirect, dl.RedirectURL)
	default:
		c.Header("Content-Disposition", `attachment; filename="`+dl.FileName+`"`)
		c.Data(http.StatusOK, dl.ContentType, dl.Data)
	}
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfferInput), errors.Is(err, usecase.ErrInvalidOfferID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Payment required to download", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOfferLetterNotReady):
		return pkg.NewDomainErrorSimple("OFFER_LETTER_NOT_READY", "Offer letter not yet available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferDocumentMissing):
		return pkg.NewDomainErrorSimple("OFFER_DOCUMENT_NOT_FOUND", "PDF file not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
