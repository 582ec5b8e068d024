package dto

import (
	"github.com/shopspring/decimal"
)

// CustomerInfo carries the customer block of a payment request. Unknown
// keys land in Extra untouched.
type CustomerInfo struct {
	Name   string         `json:"name,omitempty"`
	Email  string         `json:"email,omitempty" binding:"omitempty,email"`
	Mobile string         `json:"mobile,omitempty"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// ProcessPaymentRequest is the request body for payment processing.
type ProcessPaymentRequest struct {
	ExternalReference string          `json:"externalReference" binding:"required,max=100,safe_id"`
	PolicyNumber      string          `json:"policyNumber" binding:"required,max=100"`
	PolicyHolderID    string          `json:"policyHolderId,omitempty"`
	InsuranceType     string          `json:"insuranceType,omitempty"`
	PolicyType        string          `json:"policyType,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency" binding:"required"`
	PaymentMethod     string          `json:"paymentMethod" binding:"required"`
	Customer          CustomerInfo    `json:"customer"`
	CallbackURL       *string         `json:"callbackUrl,omitempty" binding:"omitempty,safe_url"`
	ReturnURL         *string         `json:"returnUrl,omitempty" binding:"omitempty,safe_url"`
}

// ReversalRequest is the request body for a reversal request.
type ReversalRequest struct {
	OriginalExternalReference string  `json:"originalExternalReference" binding:"required,max=100"`
	ReceiptNumber             *string `json:"receiptNumber,omitempty"`
	Reason                    string  `json:"reason" binding:"required,max=500"`
	InitiatedBy               string  `json:"initiatedBy" binding:"required,max=100"`
	ExternalReference         *string `json:"externalReference,omitempty" binding:"omitempty,max=100,safe_id"`
}

// PaymentResponse is the response body of ProcessPayment.
type PaymentResponse struct {
	TxnReference      string `json:"txnReference"`
	ExternalReference string `json:"externalReference"`
	ReceiptNumber     string `json:"receiptNumber"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	ProcessedAt       string `json:"processedAt"`
}

// ReceiptResponse is the nested receipt block of a status lookup.
type ReceiptResponse struct {
	ReceiptNumber string  `json:"receiptNumber"`
	Status        string  `json:"status"`
	AllocatedAt   *string `json:"allocatedAt,omitempty"`
	ReversedAt    *string `json:"reversedAt,omitempty"`
}

// PolicyResponse is the nested policy block of a status lookup.
type PolicyResponse struct {
	PolicyNumber string `json:"policyNumber"`
	HolderID     string `json:"holderId"`
	Product      string `json:"product"`
	Status       string `json:"status"`
}

// PaymentStatusResponse is the response body of the status lookups.
type PaymentStatusResponse struct {
	TxnReference         string           `json:"txnReference"`
	ExternalReference    string           `json:"externalReference"`
	PolicyNumber         string           `json:"policyNumber"`
	PolicyHolderID       string           `json:"policyHolderId,omitempty"`
	InsuranceType        string           `json:"insuranceType,omitempty"`
	PolicyType           string           `json:"policyType,omitempty"`
	Amount               string           `json:"amount"`
	Currency             string           `json:"currency"`
	PaymentMethod        string           `json:"paymentMethod"`
	Status               string           `json:"status"`
	ReconciliationStatus string           `json:"reconciliationStatus"`
	CreatedAt            string           `json:"createdAt"`
	ProcessedAt          *string          `json:"processedAt,omitempty"`
	Receipt              *ReceiptResponse `json:"receipt,omitempty"`
	Policy               *PolicyResponse  `json:"policy,omitempty"`
}

// ReversalResponse is the response body of both reversal endpoints.
type ReversalResponse struct {
	ReversalReference         string  `json:"reversalReference"`
	OriginalExternalReference string  `json:"originalExternalReference"`
	TxnReference              string  `json:"txnReference"`
	ReceiptNumber             *string `json:"receiptNumber,omitempty"`
	Amount                    string  `json:"amount"`
	Status                    string  `json:"status"`
	StatusMessage             string  `json:"statusMessage"`
	RequestedAt               string  `json:"requestedAt"`
	ProcessedAt               *string `json:"processedAt,omitempty"`
}

// ReconciliationItem is one row of the reconciliation report.
type ReconciliationItem struct {
	TxnReference         string           `json:"txnReference"`
	ExternalReference    string           `json:"externalReference"`
	PolicyNumber         string           `json:"policyNumber"`
	Amount               string           `json:"amount"`
	Currency             string           `json:"currency"`
	PaymentMethod        string           `json:"paymentMethod"`
	Status               string           `json:"status"`
	ReconciliationStatus string           `json:"reconciliationStatus"`
	ProcessedAt          *string          `json:"processedAt,omitempty"`
	Receipt              *ReceiptResponse `json:"receipt,omitempty"`
}

// PaginationResponse describes the page window of a report.
type PaginationResponse struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// ReconciliationResponse wraps the paginated reconciliation report.
type ReconciliationResponse struct {
	Items      []ReconciliationItem `json:"items"`
	Pagination PaginationResponse   `json:"pagination"`
}
