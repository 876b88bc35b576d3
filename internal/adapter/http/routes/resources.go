package routes

import (
	"studio_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathInvoices  = "/invoices"
	PathProjects  = "/projects"
	PathPayments  = "/payments"
	PathFeedbacks = "/feedbacks"
)

func addResourceRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	invoiceHandler *handlers.InvoiceHandler,
	projectHandler *handlers.ProjectHandler,
	paymentHandler *handlers.PaymentHandler,
	feedbackHandler *handlers.FeedbackHandler,
	dashboardHandler *handlers.DashboardHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
		clients.GET("/:id/invoices", invoiceHandler.ListClientInvoices)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/generate-number", invoiceHandler.GenerateInvoiceNumber)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.GET("/:id/generate", invoiceHandler.GenerateInvoicePNG)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PUT("/:id", paymentHandler.UpdatePayment)
		payments.PATCH("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	feedbacks := rg.Group(PathFeedbacks)
	{
		feedbacks.POST("", feedbackHandler.CreateFeedback)
		feedbacks.GET("", feedbackHandler.ListFeedbacks)
		feedbacks.GET("/:id", feedbackHandler.GetFeedback)
		feedbacks.PUT("/:id", feedbackHandler.UpdateFeedback)
		feedbacks.PATCH("/:id", feedbackHandler.UpdateFeedback)
		feedbacks.DELETE("/:id", feedbackHandler.DeleteFeedback)
	}

	rg.GET("/dashboard/summary", dashboardHandler.GetSummary)
	rg.POST("/send-whatsapp", notificationHandler.SendWhatsApp)
}
