package analyzer

import "fmt"

// BuildSystemPrompt returns the fixed extraction instructions: document type
// detection, the full output schema for each category, and the normalization
// rules the backend must apply.
func BuildSystemPrompt() string {
	return `You are a document data extraction assistant. Analyze the provided document and classify it as one of three categories: "receipt", "invoice", or "other".

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation - just the raw JSON object.

If the document is a receipt or an invoice, return exactly this structure:
{
  "document_type": "receipt" or "invoice",
  "vendor_name": "",
  "vendor_address": "",
  "vendor_phone": "",
  "date": "",
  "time": "",
  "currency": "",
  "line_items": [
    {
      "name": "",
      "quantity": "",
      "unit_price": "",
      "line_total": "",
      "sku": ""
    }
  ],
  "subtotal": "",
  "taxes": [{"name": "", "rate": "", "amount": ""}],
  "discounts": [{"name": "", "amount": ""}],
  "fees": [{"name": "", "amount": ""}],
  "tip": "",
  "total": "",
  "notes": "",
  "confidence": {"total": 0.0, "items": 0.0}
}

If the document is anything else, return exactly this structure:
{
  "document_type": "other",
  "title": "",
  "summary": "",
  "notes": ""
}

NORMALIZATION RULES:
1. Format every money amount as a decimal string with a dot separator and two decimal places when feasible (e.g. "12.50").
2. Quantity is a string; prefer integer form when feasible (e.g. "2", not "2.0").
3. If the document lists multiple taxes, emit one entry in "taxes" per tax. The rate is a numeric string without a percent sign (e.g. "8.25").
4. "subtotal" should equal the sum of all line totals when computable.
5. Compute a candidate grand total as subtotal + taxes + fees + tip - discounts.
6. If the total printed on the document deviates from the computed total by more than 1%, keep the printed total and append a one-line warning to "notes".

Use "receipt" for point-of-sale documents, "invoice" for billing documents with payment terms, and "other" for everything else. If a field is not present in the document, use an empty string for text and an empty array for lists. The "confidence" object carries your own 0.0-1.0 estimate of extraction quality for the grand total and for the line items.`
}

// BuildUserPrompt returns the per-request instruction referencing the
// uploaded filename.
func BuildUserPrompt(filename string) string {
	return fmt.Sprintf(`Analyze the uploaded file %q and extract its data according to the instructions. Respond with pure JSON only - no markdown, no code fences, no commentary.`, filename)
}
