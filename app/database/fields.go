package database

import (
	"context"
	"database/sql"

	"arc-portal/app/models"
)

// Custom field descriptors live in the portal-owned registry_fields table;
// built-in descriptors come from the registry package and are not stored.

func ListCustomFields(ctx context.Context, db *sql.DB) ([]models.FieldDescriptor, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, label, category FROM registry_fields ORDER BY label ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FieldDescriptor
	for rows.Next() {
		f := models.FieldDescriptor{Custom: true}
		if err := rows.Scan(&f.ID, &f.Label, &f.Category); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func CreateCustomField(ctx context.Context, db *sql.DB, field *models.FieldDescriptor) error {
	return db.QueryRowContext(ctx,
		`INSERT INTO registry_fields (label, category) VALUES ($1, $2) RETURNING id`,
		field.Label, field.Category).Scan(&field.ID)
}

func DeleteCustomField(ctx context.Context, db *sql.DB, id string) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM registry_fields WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
