package handlers

import (
	"errors"
	"log"
	"net/http"
	"path"

	"offer_agent/internal/usecase/interfaces"
	"offer_agent/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves stored offer letters under /offers, whichever
// store holds them.
type DocumentHandler struct {
	store interfaces.IDocumentStore
}

func NewDocumentHandler(store interfaces.IDocumentStore) *DocumentHandler {
	return &DocumentHandler{store: store}
}

func (h *DocumentHandler) Serve(c *gin.Context) {
	name := c.Param("name")

	data, err := h.store.Open(c.Request.Context(), name)
	if err != nil {
		if !errors.Is(err, interfaces.ErrDocumentNotFound) {
			log.Printf("[document][handler] open failed name=%q err=%v", name, err)
		}
		appErr := pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contentType := "application/octet-stream"
	if path.Ext(name) == ".pdf" {
		contentType = "application/pdf"
	}
	c.Data(http.StatusOK, contentType, data)
}
