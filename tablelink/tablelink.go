// Package tablelink builds the customer-facing URLs encoded into table QR
// codes. Slugs and table numbers are caller-controlled identifiers and are
// trusted to be URL-safe.
package tablelink

import "fmt"

// MenuPath returns the route path for a table's menu page
func MenuPath(slug string, tableNumber int) string {
	return fmt.Sprintf("/r/%s/table/%d", slug, tableNumber)
}

// MenuURL returns the absolute customer-facing URL for a table:
// {baseURL}/r/{slug}/table/{number}
func MenuURL(baseURL, slug string, tableNumber int) string {
	return baseURL + MenuPath(slug, tableNumber)
}
