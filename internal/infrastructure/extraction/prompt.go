package extraction

import "fmt"

const fieldSchema = `{
  "address": "full street address",
  "city": "city name",
  "state": "state abbreviation (2 letters)",
  "zipCode": "zip code",
  "price": number or null,
  "aiFairValue": number or null,
  "daysOnMarket": number or null,
  "mlsNumber": "MLS number string or null",
  "listingAgentName": "agent name or null",
  "listingAgentEmail": "agent email or null",
  "listingAgentPhone": "agent phone or null",
  "offerDeadline": "ISO date string or null",
  "hasHOA": boolean or null,
  "builtBefore1978": boolean or null,
  "bedrooms": number or null,
  "bathrooms": number or null,
  "squareFeet": number or null,
  "lotSize": number or null,
  "yearBuilt": number or null,
  "propertyType": "property type string or null"
}`

func pagePrompt(listingURL, pageText string) string {
	return fmt.Sprintf(`You are a real estate data extraction expert. Extract property information from web pages and return structured JSON data. Always return valid JSON only.

Extract property information from the following real estate listing page content.
Use null for any fields you cannot find.

URL: %s

Page content:
%s

Return a JSON object with these exact fields:
%s

For "aiFairValue", analyze the property details (price, location, size, condition, market trends, comparable properties) and estimate a fair market value appropriate for making an offer.

Return ONLY valid JSON, no other text.`, listingURL, pageText, fieldSchema)
}

func urlOnlyPrompt(listingURL string) string {
	return fmt.Sprintf(`You are a real estate data extraction expert. Extract property information from this real estate listing URL: %s

Return a JSON object with these exact fields:
%s

Return ONLY valid JSON, no other text. If you cannot access the URL, return a JSON object with all fields set to null and include an "error" field explaining the issue.`, listingURL, fieldSchema)
}
