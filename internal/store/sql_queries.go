package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
)

// Column lists, in scan order.
var (
	applicationColumns = []string{
		"id", "user_id", "title", "company", "closing_date",
		"link", "description", "notes", "role", "salary",
		"position", "starred", "timeline",
		"status_id", "priority_id", "folder_id",
		"created_at", "updated_at",
	}

	folderColumns = []string{"id", "user_id", "title", "position", "created_at", "updated_at"}

	selectColumns = []string{"id", "user_id", "title", "color", "created_at", "updated_at"}

	userColumns = []string{"id", "email", "password_hash", "is_superuser", "created_at"}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner, extra ...any) (models.Application, error) {
	var a models.Application
	dest := []any{
		&a.ID, &a.UserID, &a.Title, &a.Company, &a.ClosingDate,
		&a.Link, &a.Description, &a.Notes, &a.Role, &a.Salary,
		&a.Position, &a.Starred, &a.Timeline,
		&a.StatusID, &a.PriorityID, &a.FolderID,
		&a.CreatedAt, &a.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	a.Tags = []models.Select{}
	return a, err
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var f models.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Title, &f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func selectScanner(kind models.SelectKind) func(rowScanner) (models.Select, error) {
	return func(row rowScanner) (models.Select, error) {
		return scanSelect(row, kind)
	}
}

func scanSelect(row rowScanner, kind models.SelectKind) (models.Select, error) {
	s := models.Select{Kind: kind}
	err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Color, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Superuser, &u.CreatedAt)
	return u, err
}

// selectByID builds "SELECT cols FROM table WHERE table.id = ?".
func selectByID(b sq.StatementBuilderType, schema search.Schema, columns []string, id int64) sq.SelectBuilder {
	return b.Select(schema.Columns(columns...)...).
		From(schema.Table).
		Where(sq.Eq{schema.Column(schema.KeyColumn): id})
}

// countOwnedQuery counts the distinct ids of table that belong to owner.
func countOwnedQuery(b sq.StatementBuilderType, schema search.Schema, owner uuid.UUID, ids []int64) sq.SelectBuilder {
	return b.Select("COUNT(DISTINCT " + schema.Column(schema.KeyColumn) + ")").
		From(schema.Table).
		Where(sq.Eq{
			schema.Column(schema.OwnerColumn): owner,
			schema.Column(schema.KeyColumn):   ids,
		})
}

// uniqueIDs drops duplicates while keeping the first occurrence order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
