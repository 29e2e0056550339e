package extract

// extractionPrompt instructs the model to return a strict JSON array of
// purchase rows from a credit card statement.
const extractionPrompt = `Extract ALL credit card transactions from this bank statement PDF.

For each transaction, extract:
1. Transaction Date (in YYYY-MM-DD format)
2. Description (merchant name and location)
3. Amount (as a positive number for purchases, include cents)
4. Category (infer from merchant: Dining, Gas, Merchandise, Entertainment, Travel, Services, Healthcare, Other)

IMPORTANT:
- Include ALL transactions, don't skip any
- Convert dates to YYYY-MM-DD format
- For amounts, use positive numbers for purchases/debits
- Skip payment transactions (like "AUTOMATIC PAYMENT - THANK YOU")
- Skip any fees or interest charges

Return the data as a JSON array with objects having these exact keys:
- "date": "YYYY-MM-DD"
- "description": "merchant description"
- "amount": numeric value (no $ sign)
- "category": "category name"

Example output:
[
    {"date": "2025-01-15", "description": "SHELL OIL 523769600 STARKVILLE MS", "amount": 45.23, "category": "Gas"},
    {"date": "2025-01-16", "description": "WALMART STORE #112", "amount": 67.89, "category": "Merchandise"}
]

Return ONLY the JSON array, no other text. Do NOT wrap the response in code fences.`
