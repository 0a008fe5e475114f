package character

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

const pgUniqueViolation = "23505"

// PostgresConfig holds the Postgres repository dependencies
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

// Validate ensures all required dependencies are provided
func (c *PostgresConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Pool == nil {
		vb.RequiredField("pool")
	}
	return vb.Build()
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a repository on a pgx pool. The schema must
// already be migrated.
func NewPostgresRepository(cfg *PostgresConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character repository config")
	}
	return &postgresRepository{pool: cfg.Pool}, nil
}

var _ Repository = (*postgresRepository)(nil)

func (r *postgresRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	data, err := encode(c)
	if err != nil {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO characters (id, player_id, name, race, class, background, level, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.PlayerID, c.Name, string(c.Race), string(c.Class), string(c.Background),
		c.Level, data, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, alreadyExists(c.ID)
		}
		return nil, errors.Wrap(err, "failed to insert character")
	}

	return &CreateOutput{Character: c}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM characters WHERE id = $1`, input.ID).Scan(&data)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(input.ID)
		}
		return nil, errors.Wrap(err, "failed to query character")
	}

	c, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *postgresRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if err := validateList(&input); err != nil {
		return nil, err
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM characters WHERE player_id = $1`, input.PlayerID,
	).Scan(&total); err != nil {
		return nil, errors.Wrap(err, "failed to count characters")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT data FROM characters
		WHERE player_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`,
		input.PlayerID, input.Limit, input.Offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer rows.Close()

	out := &ListByPlayerIDOutput{Total: total}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		c, err := decode(data)
		if err != nil {
			return nil, err
		}
		out.Characters = append(out.Characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate characters")
	}

	return out, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM characters WHERE id = $1`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	if tag.RowsAffected() == 0 {
		return nil, notFound(input.ID)
	}
	return &DeleteOutput{}, nil
}
