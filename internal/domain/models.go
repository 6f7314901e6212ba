package domain

// FinancialDocument is the normalized shape produced for receipts and invoices.
// Field names and nesting are the binding output contract; values are
// model-produced and advisory, so everything monetary is a string.
type FinancialDocument struct {
	DocumentType  DocumentType  `json:"document_type"`
	VendorName    string        `json:"vendor_name"`
	VendorAddress string        `json:"vendor_address"`
	VendorPhone   string        `json:"vendor_phone"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Currency      string        `json:"currency"`
	LineItems     []LineItem    `json:"line_items"`
	Subtotal      string        `json:"subtotal"`
	Taxes         []TaxEntry    `json:"taxes"`
	Discounts     []ChargeEntry `json:"discounts"`
	Fees          []ChargeEntry `json:"fees"`
	Tip           string        `json:"tip"`
	Total         string        `json:"total"`
	Notes         string        `json:"notes"`
	Confidence    Confidence    `json:"confidence"`
}

// LineItem is a single purchased item on a receipt or invoice.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	SKU       string `json:"sku"`
}

// TaxEntry is one tax applied to the document. Rate is a numeric string
// without a percent sign.
type TaxEntry struct {
	Name   string `json:"name"`
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
}

// ChargeEntry is a named amount: a discount or a fee.
type ChargeEntry struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Confidence carries the model's own 0.0-1.0 estimates of extraction quality.
type Confidence struct {
	Total float64 `json:"total"`
	Items float64 `json:"items"`
}

// GenericDocument is the normalized shape for anything that is not a
// receipt or an invoice. It is also the fallback shape synthesized when a
// reply cannot be parsed as JSON, with Notes carrying the raw reply text.
type GenericDocument struct {
	DocumentType DocumentType `json:"document_type"`
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	Notes        string       `json:"notes"`
}
