package repository

import (
	"context"
	"testing"

	"projtrack/internal/models"
	"projtrack/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	user := &models.User{CollegeEmail: "a@b.edu", HashedPassword: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, uint(1), user.ID)

	got, err := repo.GetByEmail(ctx, "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, got.Role)
	assert.False(t, got.IsProfileComplete)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Create(ctx, &models.User{CollegeEmail: "a@b.edu", HashedPassword: "hash"})
	assert.Error(t, err)

	require.NoError(t, repo.MarkProfileComplete(ctx, 1))
	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsProfileComplete)
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewThemeRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Theme{Name: "Health"}))
	require.NoError(t, repo.Create(ctx, &models.Theme{Name: "Agriculture"}))

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.NameEntry{{ID: 1, Name: "Health"}, {ID: 2, Name: "Agriculture"}}, names)

	exists, err := repo.ExistsByName(ctx, "Health")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "themes", repo.Table())
}

func TestStudentRepository_Updates(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.Seed(t, db,
		&models.User{CollegeEmail: "s@college.edu", HashedPassword: "x"},
		&models.Department{Name: "ECE"},
		&models.Student{
			UserID: 1, Name: "Ravi", USN: "1RV21EC010", DepartmentID: 1,
			CGPA: decimal.NewNullDecimal(decimal.RequireFromString("8.25")), PhoneNo: "12345",
		},
	)
	repo := NewStudentRepository(db)

	student, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Updates(ctx, student, map[string]interface{}{"personal_email": "r@x.com"}))
	assert.Equal(t, "r@x.com", student.PersonalEmail)
	assert.Equal(t, "Ravi", student.Name)
	assert.Equal(t, "12345", student.PhoneNo)
	assert.Equal(t, "8.25", student.CGPA.Decimal.StringFixed(2))

	taken, err := repo.ExistsByUSN(ctx, "1RV21EC010")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestProjectRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.Seed(t, db,
		&models.User{CollegeEmail: "a@b.edu", HashedPassword: "x"},
		&models.User{CollegeEmail: "c@d.edu", HashedPassword: "x"},
		&models.Project{Name: "P1", OwnerID: 1, Image: []byte{1, 2}},
		&models.Project{Name: "P2", OwnerID: 2},
		&models.Project{Name: "P3", OwnerID: 1},
	)
	repo := NewProjectRepository(db)

	rows, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P1", rows[0].Name)
	assert.Equal(t, "P3", rows[1].Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Nil(t, all[0].Image)

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusProposed, p.Status)
	assert.Equal(t, []byte{1, 2}, p.Image)

	err = repo.Create(ctx, &models.Project{Name: "orphan", OwnerID: 9})
	assert.Error(t, err)
}
