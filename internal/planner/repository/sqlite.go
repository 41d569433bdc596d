package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ============================================================
// SQLite Repository
// ============================================================

//go:embed migrations/*.sql
var migrations embed.FS

var ErrNotFound = errors.New("not found")

// ExportRecord: один сохранённый документ экспорта.
type ExportRecord struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	FileName    string  `json:"fileName"`
	TotalBudget float64 `json:"totalBudget"`
	TotalItems  int     `json:"totalItems"`
	Document    []byte  `json:"-"`
	CreatedAt   string  `json:"createdAt"`
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет миграции.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// SaveExport сохраняет документ и возвращает запись с выданным id.
func (r *Repository) SaveExport(ctx context.Context, rec ExportRecord) (*ExportRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO exports (id, project_id, project_name, file_name, total_budget, total_items, document, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, rec.ID, rec.ProjectID, rec.ProjectName, rec.FileName, rec.TotalBudget, rec.TotalItems, rec.Document, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert export: %w", err)
	}
	return &rec, nil
}

// ListExports возвращает экспорты проекта без тела документа, новые первыми.
func (r *Repository) ListExports(ctx context.Context, projectID string) ([]ExportRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, project_id, project_name, file_name, total_budget, total_items, created_at
        FROM exports
        WHERE project_id = ?
        ORDER BY created_at DESC, id DESC
    `, projectID)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	out := []ExportRecord{}
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.ProjectName, &rec.FileName, &rec.TotalBudget, &rec.TotalItems, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repository) GetExport(ctx context.Context, id string) (*ExportRecord, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, project_id, project_name, file_name, total_budget, total_items, document, created_at
        FROM exports
        WHERE id = ?
    `, id)

	var rec ExportRecord
	if err := row.Scan(&rec.ID, &rec.ProjectID, &rec.ProjectName, &rec.FileName, &rec.TotalBudget, &rec.TotalItems, &rec.Document, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	names, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	for _, entry := range names {
		data, err := migrations.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути; ":memory:" открывает базу в памяти.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	dsn := "file::memory:"
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
