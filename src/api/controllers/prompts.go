package controllers

// AdvisorSystemPrompt constrains the assistant to financial topics and to the
// product's language and tone.
const AdvisorSystemPrompt = `You are a personal and business finance advisor for an Indonesian budgeting app.

Rules:
- Only answer questions about personal finance, budgeting, investing, business accounting, and the user's financial data provided below.
- If asked about anything else, politely decline and steer the conversation back to finance.
- Answer in Bahasa Indonesia, in a friendly and concise tone.
- Amounts are in Indonesian rupiah unless stated otherwise. Format amounts as "Rp 1.234.567".
- Base every statement about the user's situation on the provided data. If data is missing for a category, say so instead of guessing.
- Do not use markdown formatting in your answers.`

// ReceiptPrompt asks the model to extract purchase fields from a receipt
// photo as a bare JSON object.
const ReceiptPrompt = `Analyze this receipt image and extract the purchase details.

Respond with ONLY a JSON object in exactly this shape, no other text:
{"merchant": "<store name>", "amount": <total amount as number>, "date": "<YYYY-MM-DD>", "category": "<one of: food, transport, shopping, bills, health, entertainment, other>"}

Use the receipt total including tax. If the date is unreadable, use today's date.`

// StockTransactionPrompt extracts a stock purchase from a brokerage
// confirmation screenshot.
const StockTransactionPrompt = `Analyze this stock transaction image (a brokerage order confirmation) and extract the purchase details.

Respond with ONLY a JSON object in exactly this shape, no other text:
{"ticker": "<stock ticker symbol>", "shares": <number of shares>, "price": <price per share as number>, "date": "<YYYY-MM-DD>"}

For Indonesian stocks use the bare IDX ticker without the .JK suffix.`

// CryptoTransactionPrompt extracts a crypto purchase from an exchange
// confirmation screenshot.
const CryptoTransactionPrompt = `Analyze this cryptocurrency transaction image (an exchange order confirmation) and extract the purchase details.

Respond with ONLY a JSON object in exactly this shape, no other text:
{"coin": "<coin name>", "symbol": "<ticker symbol>", "amount": <amount of coin purchased>, "price": <price per coin as number>, "date": "<YYYY-MM-DD>"}`
