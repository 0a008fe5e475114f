package character

import (
	"context"
	"database/sql"
	stderrors "errors"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// SQLiteConfig holds the SQLite repository dependencies
type SQLiteConfig struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("db")
	}
	return vb.Build()
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a repository on a SQLite handle. The schema
// must already be migrated.
func NewSQLiteRepository(cfg *SQLiteConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character repository config")
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

var _ Repository = (*sqliteRepository)(nil)

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	data, err := encode(c)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO characters (id, player_id, name, race, class, background, level, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.PlayerID, c.Name, string(c.Race), string(c.Class), string(c.Background),
		c.Level, string(data), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, alreadyExists(c.ID)
		}
		return nil, errors.Wrap(err, "failed to insert character")
	}

	return &CreateOutput{Character: c}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, input.ID).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, notFound(input.ID)
		}
		return nil, errors.Wrap(err, "failed to query character")
	}

	c, err := decode([]byte(data))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *sqliteRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if err := validateList(&input); err != nil {
		return nil, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM characters WHERE player_id = ?`, input.PlayerID,
	).Scan(&total); err != nil {
		return nil, errors.Wrap(err, "failed to count characters")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT data FROM characters
		WHERE player_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?`,
		input.PlayerID, input.Limit, input.Offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	out := &ListByPlayerIDOutput{Total: total}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		c, err := decode([]byte(data))
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

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deleted rows")
	}
	if n == 0 {
		return nil, notFound(input.ID)
	}
	return &DeleteOutput{}, nil
}
