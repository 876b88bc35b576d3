package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "studio_ops/internal/adapter/http/dto/request"
	response "studio_ops/internal/adapter/http/dto/response"
	"studio_ops/internal/usecase"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices, including the PNG export
// and the daily sequence number preview.
type InvoiceHandler struct {
	usecase       usecase.IInvoiceUseCase
	numberUsecase usecase.IInvoiceNumberUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, numberUC usecase.IInvoiceNumberUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, numberUsecase: numberUC}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Created(inv.ID, "Invoice created"))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch()); err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Invoice updated"})
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Invoice deleted"})
}

func (h *InvoiceHandler) ListClientInvoices(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoices, err := h.usecase.ListByClient(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GenerateInvoiceNumber previews the next daily sequence number without
// reserving it.
func (h *InvoiceHandler) GenerateInvoiceNumber(c *gin.Context) {
	number, err := h.numberUsecase.NextNumber(c.Request.Context())
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.InvoiceNumberResponse{InvoiceNumber: number})
}

// GenerateInvoicePNG renders the invoice as a downloadable PNG attachment.
func (h *InvoiceHandler) GenerateInvoicePNG(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	png, inv, err := h.usecase.RenderPNG(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}

	name := inv.InvoiceNumber
	if name == "" {
		name = string(inv.ID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.png", name))
	c.Data(http.StatusOK, "image/png", png)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
