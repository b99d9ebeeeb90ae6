// Package directory resolves scraped instructor names against the staff
// directory snapshot via an exact index with a fuzzy fallback.
package directory

import "github.com/jackc/pgx/v5/pgtype"

// Entry is one staff directory row, keyed by full display name as scraped.
type Entry struct {
	Name  string      `json:"name"`
	Title pgtype.Text `json:"title"`
	Email pgtype.Text `json:"email"`
	Phone pgtype.Text `json:"phone"`
}
