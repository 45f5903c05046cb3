package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput una línea de la orden a crear. La positividad de Quantity
// se valida en el caso de uso (decimal no admite tags numéricos).
type OrderItemInput struct {
	ProductID      string          `json:"productId" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	InvoiceID    string           `json:"invoiceId"`
	BillTotal    decimal.Decimal  `json:"billTotal"`
	CashAmount   decimal.Decimal  `json:"cashAmount"`
	CardAmount   decimal.Decimal  `json:"cardAmount"`
	CardDigits   string           `json:"cardDigits"`
	WalletIn     decimal.Decimal  `json:"walletIn"`
	WalletOut    decimal.Decimal  `json:"walletOut"`
	OtherPayment decimal.Decimal  `json:"otherPayment"`
	CustomerID   string           `json:"customerId"`
	SellingType  string           `json:"sellingType"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// ReturnItemInput un ítem a devolver: producto, cantidad y condición física.
type ReturnItemInput struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Condition string          `json:"condition" validate:"required,oneof=Good Damaged Expired"`
}

// ReturnOrderRequest body para POST /api/orders/:transactionCode/returns.
type ReturnOrderRequest struct {
	Items []ReturnItemInput `json:"itemsToReturn" validate:"required,min=1,dive"`
}

// UsedProductDetailDTO consumo de materia prima de una línea.
type UsedProductDetailDTO struct {
	ProductID  string          `json:"productId"`
	Quantity   decimal.Decimal `json:"quantity"`
	CurrentWAC decimal.Decimal `json:"currentWAC"`
}

// FinishedGoodLineDTO resumen de una línea de venta en la respuesta de orden.
type FinishedGoodLineDTO struct {
	FinishedGoodID     string                 `json:"finishedgoodId"`
	UsedProductDetails []UsedProductDetailDTO `json:"usedProductDetails"`
	FinishedGoodQty    decimal.Decimal        `json:"finishedgoodQty"`
	SellingPrice       decimal.Decimal        `json:"sellingPrice"`
	DiscountAmount     decimal.Decimal        `json:"discountAmount"`
	TransactionStatus  string                 `json:"transactionStatus"`
}

// OrderDetails orden completa: transacción de pago + líneas.
type OrderDetails struct {
	TransactionCode     string                `json:"transactionCode"`
	CompanyID           string                `json:"companyId"`
	ShopID              string                `json:"shopId"`
	TransactionDateTime time.Time             `json:"transactionDateTime"`
	InvoiceID           string                `json:"invoiceId"`
	BillTotal           decimal.Decimal       `json:"billTotal"`
	CashAmount          decimal.Decimal       `json:"cashAmount"`
	CardAmount          decimal.Decimal       `json:"cardAmount"`
	WalletIn            decimal.Decimal       `json:"walletIn"`
	WalletOut           decimal.Decimal       `json:"walletOut"`
	OtherPayment        decimal.Decimal       `json:"otherPayment"`
	TransactionStatus   string                `json:"transactionStatus"`
	CustomerID          string                `json:"customerId"`
	FinishedGoods       []FinishedGoodLineDTO `json:"finishedGoods"`
}

// OrderSummary fila de listado de órdenes.
type OrderSummary struct {
	TransactionCode     string          `json:"transactionCode"`
	TransactionDateTime time.Time       `json:"transactionDateTime"`
	BillTotal           decimal.Decimal `json:"billTotal"`
	TransactionStatus   string          `json:"transactionStatus"`
	CustomerID          string          `json:"customerId"`
}
