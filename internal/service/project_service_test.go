package service

import (
	"context"
	"testing"

	"projtrack/internal/dto"
	"projtrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	owner := env.signup(t, "a@b.edu")

	id, err := env.projects.Create(ctx, &dto.CreateProjectRequest{Name: "P1", OwnerID: owner})
	require.NoError(t, err)

	p, err := env.projects.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "0.00", p.Budget.StringFixed(2))
	assert.Equal(t, models.ProjectStatusProposed, p.Status)
	assert.Zero(t, p.StudentsInvolvedCount)
	assert.Equal(t, "", p.GithubLink)
	assert.Nil(t, p.StartDate)
	assert.Equal(t, owner, p.OwnerID)
}

func TestProjectService_CreateFull(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	owner := env.signup(t, "a@b.edu")
	budget := decimal.RequireFromString("1250.5")
	count := 4

	id, err := env.projects.Create(ctx, &dto.CreateProjectRequest{
		Name:                  "Drone",
		Description:           strPtr("survey drone"),
		Budget:                &budget,
		Status:                strPtr(models.ProjectStatusOngoing),
		StudentsInvolvedCount: &count,
		StartDate:             strPtr("2024-01-15"),
		EndDate:               strPtr("2024-06-30"),
		GithubLink:            strPtr("https://github.com/x/drone"),
		OwnerID:               owner,
	})
	require.NoError(t, err)

	resp := dto.NewProjectResponse(mustProject(t, env, id))
	assert.Equal(t, "1250.50", resp.Budget)
	assert.Equal(t, models.ProjectStatusOngoing, resp.Status)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2024-01-15", *resp.StartDate)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2024-06-30", *resp.EndDate)
	assert.Equal(t, 4, resp.StudentsInvolvedCount)
}

func TestProjectService_CreateRejects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	owner := env.signup(t, "a@b.edu")
	negative := decimal.NewFromInt(-1)
	huge := decimal.NewFromInt(100000000)

	tests := []struct {
		name    string
		req     dto.CreateProjectRequest
		wantErr error
	}{
		{name: "unknown owner", req: dto.CreateProjectRequest{Name: "P", OwnerID: 9}, wantErr: ErrInvalidReference},
		{name: "missing owner", req: dto.CreateProjectRequest{Name: "P"}, wantErr: ErrMissingField},
		{name: "bad status", req: dto.CreateProjectRequest{Name: "P", OwnerID: owner, Status: strPtr("Paused")}, wantErr: ErrInvalidInput},
		{name: "bad date", req: dto.CreateProjectRequest{Name: "P", OwnerID: owner, StartDate: strPtr("15/01/2024")}, wantErr: ErrInvalidInput},
		{
			name:    "end before start",
			req:     dto.CreateProjectRequest{Name: "P", OwnerID: owner, StartDate: strPtr("2024-05-01"), EndDate: strPtr("2024-04-01")},
			wantErr: ErrInvalidInput,
		},
		{name: "negative budget", req: dto.CreateProjectRequest{Name: "P", OwnerID: owner, Budget: &negative}, wantErr: ErrInvalidInput},
		{name: "budget too large", req: dto.CreateProjectRequest{Name: "P", OwnerID: owner, Budget: &huge}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.projects.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	rows, err := env.projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	owner := env.signup(t, "a@b.edu")
	other := env.signup(t, "c@d.edu")
	id, err := env.projects.Create(ctx, &dto.CreateProjectRequest{
		Name: "P1", OwnerID: owner, StartDate: strPtr("2024-01-01"), GithubLink: strPtr("gh"),
	})
	require.NoError(t, err)

	p, err := env.projects.Update(ctx, id, &dto.UpdateProjectRequest{
		Status:  strPtr(models.ProjectStatusCompleted),
		OwnerID: &other,
		EndDate: strPtr("2024-03-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
	assert.Equal(t, other, p.OwnerID)
	assert.Equal(t, "P1", p.Name)
	assert.Equal(t, "gh", p.GithubLink)

	// the stored start date still bounds a new end date
	_, err = env.projects.Update(ctx, id, &dto.UpdateProjectRequest{EndDate: strPtr("2023-12-31")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	missing := uint(404)
	_, err = env.projects.Update(ctx, id, &dto.UpdateProjectRequest{OwnerID: &missing})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = env.projects.Update(ctx, 999, &dto.UpdateProjectRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	byOwner, err := env.projects.ListByOwner(ctx, other)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, id, byOwner[0].ID)

	byOwner, err = env.projects.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, byOwner)
}

func mustProject(t *testing.T, env *testEnv, id uint) *models.Project {
	t.Helper()
	p, err := env.projects.Get(context.Background(), id)
	require.NoError(t, err)
	return p
}
