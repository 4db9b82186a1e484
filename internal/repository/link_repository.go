package repository

import (
	"context"
	"fmt"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// LinkSpec describes one many-to-many join table. Join columns share their names with
// the primary key columns of the tables they reference, and every target table has a
// name column. Identifiers come from the fixed specs below, never from requests.
type LinkSpec struct {
	JoinTable    string
	OwnerTable   string
	OwnerColumn  string
	TargetTable  string
	TargetColumn string
}

// Join table descriptors.
var (
	StudentTechnologies = LinkSpec{
		JoinTable: "student_technologies", OwnerTable: "students", OwnerColumn: "student_id",
		TargetTable: "technologies", TargetColumn: "technology_id",
	}
	FacultyTechnologies = LinkSpec{
		JoinTable: "faculty_technologies", OwnerTable: "faculty", OwnerColumn: "faculty_id",
		TargetTable: "technologies", TargetColumn: "technology_id",
	}
	ProjectTechnologies = LinkSpec{
		JoinTable: "project_technologies", OwnerTable: "projects", OwnerColumn: "project_id",
		TargetTable: "technologies", TargetColumn: "technology_id",
	}
	ProjectThemes = LinkSpec{
		JoinTable: "project_themes", OwnerTable: "projects", OwnerColumn: "project_id",
		TargetTable: "themes", TargetColumn: "theme_id",
	}
	ProjectStudents = LinkSpec{
		JoinTable: "project_students", OwnerTable: "projects", OwnerColumn: "project_id",
		TargetTable: "students", TargetColumn: "student_id",
	}
	ProjectFaculty = LinkSpec{
		JoinTable: "project_faculty", OwnerTable: "projects", OwnerColumn: "project_id",
		TargetTable: "faculty", TargetColumn: "faculty_id",
	}
	ProjectDepartments = LinkSpec{
		JoinTable: "project_departments", OwnerTable: "projects", OwnerColumn: "project_id",
		TargetTable: "departments", TargetColumn: "department_id",
	}
)

// LinkRepository is the data access layer for every join table.
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a LinkRepository.
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *LinkRepository) WithTx(tx *gorm.DB) *LinkRepository {
	return &LinkRepository{db: tx}
}

// OwnerExists reports whether the owning row exists.
func (r *LinkRepository) OwnerExists(ctx context.Context, spec LinkSpec, ownerID uint) (bool, error) {
	return rowExists(ctx, r.db, spec.OwnerTable, spec.OwnerColumn, ownerID)
}

// TargetExists reports whether the target row exists.
func (r *LinkRepository) TargetExists(ctx context.Context, spec LinkSpec, targetID uint) (bool, error) {
	return rowExists(ctx, r.db, spec.TargetTable, spec.TargetColumn, targetID)
}

// CountTargets counts how many of ids exist in the target table. ids must be distinct.
func (r *LinkRepository) CountTargets(ctx context.Context, spec LinkSpec, ids []uint) (int64, error) {
	return countIn(ctx, r.db, spec.TargetTable, spec.TargetColumn, ids)
}

// DeleteByOwner removes every edge of ownerID.
func (r *LinkRepository) DeleteByOwner(ctx context.Context, spec LinkSpec, ownerID uint) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", spec.JoinTable, spec.OwnerColumn)
	return r.db.WithContext(ctx).Exec(sql, ownerID).Error
}

// CreateBatch inserts one edge per target id.
func (r *LinkRepository) CreateBatch(ctx context.Context, spec LinkSpec, ownerID uint, targetIDs []uint) error {
	if len(targetIDs) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(targetIDs))
	for _, id := range targetIDs {
		rows = append(rows, map[string]interface{}{
			spec.OwnerColumn:  ownerID,
			spec.TargetColumn: id,
		})
	}
	return r.db.WithContext(ctx).Table(spec.JoinTable).Create(rows).Error
}

// ListByOwner returns the raw edges of ownerID.
func (r *LinkRepository) ListByOwner(ctx context.Context, spec LinkSpec, ownerID uint) ([]models.Link, error) {
	links := []models.Link{}
	err := r.db.WithContext(ctx).Table(spec.JoinTable).
		Select(fmt.Sprintf("%s AS owner_id, %s AS target_id", spec.OwnerColumn, spec.TargetColumn)).
		Where(fmt.Sprintf("%s = ?", spec.OwnerColumn), ownerID).
		Order(spec.TargetColumn).
		Scan(&links).Error
	return links, err
}

// ListTargetNames returns the targets linked to ownerID with their display names.
func (r *LinkRepository) ListTargetNames(ctx context.Context, spec LinkSpec, ownerID uint) ([]models.NameEntry, error) {
	entries := []models.NameEntry{}
	err := r.db.WithContext(ctx).Table(spec.JoinTable+" AS l").
		Select(fmt.Sprintf("t.%s AS id, t.name AS name", spec.TargetColumn)).
		Joins(fmt.Sprintf("JOIN %s AS t ON t.%s = l.%s", spec.TargetTable, spec.TargetColumn, spec.TargetColumn)).
		Where(fmt.Sprintf("l.%s = ?", spec.OwnerColumn), ownerID).
		Order("t." + spec.TargetColumn).
		Scan(&entries).Error
	return entries, err
}

// Exists reports whether the edge (ownerID, targetID) exists.
func (r *LinkRepository) Exists(ctx context.Context, spec LinkSpec, ownerID, targetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(spec.JoinTable).
		Where(fmt.Sprintf("%s = ? AND %s = ?", spec.OwnerColumn, spec.TargetColumn), ownerID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Retarget rewrites the target of a single edge in place.
func (r *LinkRepository) Retarget(ctx context.Context, spec LinkSpec, ownerID, oldTargetID, newTargetID uint) error {
	sql := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ? AND %s = ?",
		spec.JoinTable, spec.TargetColumn, spec.OwnerColumn, spec.TargetColumn)
	return r.db.WithContext(ctx).Exec(sql, newTargetID, ownerID, oldTargetID).Error
}

// Delete removes a single edge.
func (r *LinkRepository) Delete(ctx context.Context, spec LinkSpec, ownerID, targetID uint) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?", spec.JoinTable, spec.OwnerColumn, spec.TargetColumn)
	return r.db.WithContext(ctx).Exec(sql, ownerID, targetID).Error
}
