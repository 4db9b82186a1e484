package repository

import (
	"context"
	"fmt"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// CatalogEntity is a name-keyed lookup row.
type CatalogEntity interface {
	models.Department | models.Technology | models.Theme
}

// CatalogRepository is the data access layer shared by departments, technologies
// and themes: an id column plus a unique name.
type CatalogRepository[T CatalogEntity] struct {
	db       *gorm.DB
	table    string
	idColumn string
}

// NewDepartmentRepository creates the departments repository.
func NewDepartmentRepository(db *gorm.DB) *CatalogRepository[models.Department] {
	return &CatalogRepository[models.Department]{db: db, table: "departments", idColumn: "department_id"}
}

// NewTechnologyRepository creates the technologies repository.
func NewTechnologyRepository(db *gorm.DB) *CatalogRepository[models.Technology] {
	return &CatalogRepository[models.Technology]{db: db, table: "technologies", idColumn: "technology_id"}
}

// NewThemeRepository creates the themes repository.
func NewThemeRepository(db *gorm.DB) *CatalogRepository[models.Theme] {
	return &CatalogRepository[models.Theme]{db: db, table: "themes", idColumn: "theme_id"}
}

// WithTx returns a copy bound to tx.
func (r *CatalogRepository[T]) WithTx(tx *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: tx, table: r.table, idColumn: r.idColumn}
}

// Table is the backing table name.
func (r *CatalogRepository[T]) Table() string {
	return r.table
}

func (r *CatalogRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).Order(r.idColumn).Find(&rows).Error
	return rows, err
}

// ListNames returns the id/name projection.
func (r *CatalogRepository[T]) ListNames(ctx context.Context) ([]models.NameEntry, error) {
	entries := []models.NameEntry{}
	err := r.db.WithContext(ctx).Table(r.table).
		Select(fmt.Sprintf("%s AS id, name", r.idColumn)).
		Order(r.idColumn).
		Scan(&entries).Error
	return entries, err
}

func (r *CatalogRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	return rowExists(ctx, r.db, r.table, r.idColumn, id)
}

func (r *CatalogRepository[T]) ExistsByName(ctx context.Context, name string) (bool, error) {
	return rowExists(ctx, r.db, r.table, "name", name)
}
