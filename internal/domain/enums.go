package domain

// DocumentType is the top-level classification the analyzer produces.
type DocumentType string

const (
	DocumentTypeReceipt DocumentType = "receipt"
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeOther   DocumentType = "other"
)
