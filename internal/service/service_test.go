package service

import (
	"context"
	"testing"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/internal/testutil"
	"projtrack/pkg/lookupcache"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	users    *UserService
	depts    *CatalogService[models.Department]
	techs    *CatalogService[models.Technology]
	themes   *CatalogService[models.Theme]
	faculty  *FacultyService
	students *StudentService
	projects *ProjectService
	links    *LinkService
}

func newTestEnv(t *testing.T, cache *lookupcache.Cache) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	logger := testutil.NewLogger()

	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)

	return &testEnv{
		db:       db,
		auth:     NewAuthService(userRepo, uow, bcrypt.MinCost, logger),
		users:    NewUserService(userRepo, uow, bcrypt.MinCost, logger),
		depts:    NewDepartmentService(deptRepo, uow, cache, logger),
		techs:    NewTechnologyService(repository.NewTechnologyRepository(db), uow, cache, logger),
		themes:   NewThemeService(repository.NewThemeRepository(db), uow, cache, logger),
		faculty:  NewFacultyService(repository.NewFacultyRepository(db), userRepo, deptRepo, uow, cache, logger),
		students: NewStudentService(repository.NewStudentRepository(db), userRepo, deptRepo, uow, cache, logger),
		projects: NewProjectService(repository.NewProjectRepository(db), userRepo, uow, cache, logger),
		links:    NewLinkService(repository.NewLinkRepository(db), uow, logger),
	}
}

func (e *testEnv) signup(t *testing.T, email string) uint {
	t.Helper()
	id, err := e.auth.Signup(context.Background(), &dto.SignupRequest{CollegeEmail: email, Password: "pw"})
	require.NoError(t, err)
	return id
}

func (e *testEnv) department(t *testing.T, name string) uint {
	t.Helper()
	id, err := e.depts.Create(context.Background(), name)
	require.NoError(t, err)
	return id
}

func (e *testEnv) technology(t *testing.T, name string) uint {
	t.Helper()
	id, err := e.techs.Create(context.Background(), name)
	require.NoError(t, err)
	return id
}

func (e *testEnv) student(t *testing.T, userID, deptID uint, usn string) uint {
	t.Helper()
	id, err := e.students.Create(context.Background(), &dto.CreateStudentRequest{
		UserID:       userID,
		Name:         "Student " + usn,
		USN:          usn,
		DepartmentID: deptID,
		PhoneNo:      "9999999999",
	})
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string { return &s }
