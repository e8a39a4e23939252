package routes

import (
	"garage_manager/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathInvoices = "/invoices"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	paymentHandler *handlers.PaymentHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.POST("/online/:service_id", paymentHandler.CollectOnline)
		payments.GET("/service/:service_id", paymentHandler.ListPaymentsByService)
		payments.GET("/car/:car_id", paymentHandler.ListPaymentsByCar)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.GenerateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/service/:service_id", invoiceHandler.GetInvoiceByService)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
	}
}
