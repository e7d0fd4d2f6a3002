package postgre

import repo "item-service/internal/item/repository"

const (
	itemColumns = `id, name, colour`

	selectItemsQuery = `SELECT ` + itemColumns + ` FROM item`

	saveItemQuery = `
		INSERT INTO item (id, name, colour)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, colour = EXCLUDED.colour
		RETURNING ` + itemColumns

	deleteItemQuery = `DELETE FROM item WHERE id = $1`
)

// buildFindByIDQuery builds the single-row lookup, locking the row when requested.
func (r *implRepository) buildFindByIDQuery(opt repo.FindItemOptions) (string, []any) {
	query := selectItemsQuery + ` WHERE id = $1`
	if opt.ForUpdate {
		query += ` FOR UPDATE`
	}
	return query, []any{opt.ID}
}
