package repository

import (
	"context"
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const materialColumns = `id, name, description, thickness_options, indoor_outdoor,
	maintenance_info, price_per_m2, image_url, created_at, updated_at`

// MaterialPostgresRepository persists materials in the materials table.
type MaterialPostgresRepository struct {
	db DBTX
}

var _ interfaces.IMaterialRepository = (*MaterialPostgresRepository)(nil)

func NewMaterialPostgresRepository(db DBTX) *MaterialPostgresRepository {
	return &MaterialPostgresRepository{db: db}
}

func (r *MaterialPostgresRepository) List(ctx context.Context) ([]entities.Material, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	out := []entities.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MaterialPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Material, error) {
	m, err := scanMaterial(r.db.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if isNoRows(err) {
		return entities.Material{}, nil
	}
	return m, err
}

func (r *MaterialPostgresRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	const q = `
		INSERT INTO materials (name, description, thickness_options, indoor_outdoor,
			maintenance_info, price_per_m2, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + materialColumns

	return scanMaterial(r.db.QueryRow(ctx, q,
		m.Name, m.Description, nonNilFloats(m.ThicknessOptions), m.IndoorOutdoor,
		m.MaintenanceInfo, m.PricePerM2, m.ImageURL,
	))
}

func (r *MaterialPostgresRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	const q = `
		UPDATE materials SET
			name = $2, description = $3, thickness_options = $4, indoor_outdoor = $5,
			maintenance_info = $6, price_per_m2 = $7, image_url = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + materialColumns

	updated, err := scanMaterial(r.db.QueryRow(ctx, q,
		m.ID, m.Name, m.Description, nonNilFloats(m.ThicknessOptions), m.IndoorOutdoor,
		m.MaintenanceInfo, m.PricePerM2, m.ImageURL,
	))
	if isNoRows(err) {
		return entities.Material{}, nil
	}
	return updated, err
}

func (r *MaterialPostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete material %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanMaterial(row pgx.Row) (entities.Material, error) {
	var m entities.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.ThicknessOptions, &m.IndoorOutdoor,
		&m.MaintenanceInfo, &m.PricePerM2, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
