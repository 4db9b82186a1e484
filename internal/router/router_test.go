package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projtrack/internal/config"
	"projtrack/internal/middleware"
	"projtrack/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, ExposeErrorDetails: true},
		Auth:   config.AuthConfig{BcryptCost: bcrypt.MinCost},
		CORS: config.CORSConfig{
			Origins:      []string{"http://app.local"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return SetupRouter(testConfig(), testutil.NewLogger(), db, nil), db
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	creds := gin.H{"college_email": "a@b.edu", "password": "pw"}

	w := do(t, r, http.MethodPost, "/signup", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Sign-Up successful!", body["message"])
	assert.EqualValues(t, 1, body["user_id"])

	w = do(t, r, http.MethodPost, "/signup", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered!", decode(t, w)["error"])

	w = do(t, r, http.MethodPost, "/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["user_id"])

	w = do(t, r, http.MethodPost, "/login", gin.H{"college_email": "a@b.edu", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials!", decode(t, w)["error"])

	w = do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "not-an-email", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])

	w = do(t, r, http.MethodPost, "/signup", `{"college_email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLongPasswordRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	long := strings.Repeat("x", 80)

	w := do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "a@b.edu", "password": long})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "password must be at most 72 characters", decode(t, w)["error"])

	w = do(t, r, http.MethodPost, "/users", gin.H{"college_email": "a@b.edu", "password": long})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Nil(t, decode(t, w)["details"])

	// 30 runes but 90 bytes passes the binding and is stopped by the hash step
	w = do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "a@b.edu", "password": strings.Repeat("\u20ac", 30)})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "password must be at most 72 bytes", decode(t, w)["error"])

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "a@b.edu", "password": strings.Repeat("x", 72)}).Code)
}

func TestProjectTechnologies(t *testing.T) {
	r, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "a@b.edu", "password": "pw"}).Code)

	w := do(t, r, http.MethodPost, "/technologies", gin.H{"technology_name": "Go"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Technology added successfully!", body["message"])
	assert.EqualValues(t, 1, body["technology_id"])
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/technologies", gin.H{"technology_name": "Rust"}).Code)

	w = do(t, r, http.MethodPost, "/projects", gin.H{"name": "P1", "owner_id": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["project_id"])

	w = do(t, r, http.MethodPut, "/project_technologies/1", gin.H{"technology_ids": []int{1, 2}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, "Project technologies updated successfully", body["message"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"id": float64(1), "name": "Go"},
		map[string]interface{}{"id": float64(2), "name": "Rust"},
	}, body["technologies"])

	w = do(t, r, http.MethodGet, "/project_technologies/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []map[string]interface{}{
		{"project_id": float64(1), "technology_id": float64(1)},
		{"project_id": float64(1), "technology_id": float64(2)},
	}, decodeList(t, w))

	// a rejected replace leaves the set alone
	w = do(t, r, http.MethodPut, "/project_technologies/1", gin.H{"technology_ids": []int{1, 99}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Some technology IDs are invalid", decode(t, w)["error"])
	assert.Len(t, decodeList(t, do(t, r, http.MethodGet, "/project_technologies/1", nil)), 2)

	w = do(t, r, http.MethodPut, "/project_technologies/1", gin.H{"technology_ids": []int{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/project_technologies/7", gin.H{"technology_ids": []int{1}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", decode(t, w)["error"])

	w = do(t, r, http.MethodPut, "/project_technologies/abc", gin.H{"technology_ids": []int{1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/project_technologies/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	w = do(t, r, http.MethodPost, "/project_technologies", gin.H{"project_id": 1, "technology_ids": []int{2}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, decode(t, w)["technologies"], 1)

	w = do(t, r, http.MethodPost, "/project_technologies", gin.H{"technology_ids": []int{2}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/project_technologies", gin.H{"project_id": "x", "technology_ids": []int{2}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/departments", gin.H{"name": "CSE"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["department_id"])

	w = do(t, r, http.MethodPost, "/departments", gin.H{"name": "CSE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/themes", gin.H{"theme_name": "Health"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["theme_id"])

	w = do(t, r, http.MethodGet, "/themes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []map[string]interface{}{{"Theme_id": float64(1), "Theme_Name": "Health"}}, decodeList(t, w))

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/technologies", gin.H{"technology_name": "Go"}).Code)
	w = do(t, r, http.MethodGet, "/technologies", nil)
	assert.Equal(t, []map[string]interface{}{{"Technology_id": float64(1), "Technology_Name": "Go"}}, decodeList(t, w))

	w = do(t, r, http.MethodGet, "/departments/names", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []map[string]interface{}{{"id": float64(1), "name": "CSE"}}, decodeList(t, w))

	w = do(t, r, http.MethodPost, "/technologies", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "s@b.edu", "password": "pw"}).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/departments", gin.H{"name": "CSE"}).Code)

	w := do(t, r, http.MethodPost, "/students", gin.H{
		"user_id": 1, "name": "Asha", "usn": "1RV20CS0010000000000X", "department_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/students", gin.H{
		"user_id": 1, "name": "Asha", "usn": "1RV-20-CS-001", "department_id": 1, "cgpa": 8.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["student_id"])

	w = do(t, r, http.MethodGet, "/students/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8.50", decode(t, w)["cgpa"])

	w = do(t, r, http.MethodPut, "/students/1", `{"cgpa": 10.01}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CGPA must be between 0 and 10", decode(t, w)["error"])

	w = do(t, r, http.MethodPut, "/students/1", gin.H{"personal_email": "x@y.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	student := decode(t, w)["student"].(map[string]interface{})
	assert.Equal(t, "x@y.com", student["personal_email"])
	assert.Equal(t, "Asha", student["name"])
	assert.Equal(t, "8.50", student["cgpa"])

	w = do(t, r, http.MethodGet, "/students/by-id/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/students/by-id/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", decode(t, w)["error"])

	w = do(t, r, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["is_profile_complete"])

	// swap a linked technology through the legacy endpoint
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/technologies", gin.H{"technology_name": "Go"}).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/technologies", gin.H{"technology_name": "Rust"}).Code)
	w = do(t, r, http.MethodPost, "/student_technologies", gin.H{"student_id": 1, "technology_ids": []int{1}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPut, "/student_technologies", gin.H{"student_id": 1, "old_technology_id": 1, "new_technology_id": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Student technology updated successfully", decode(t, w)["message"])

	w = do(t, r, http.MethodGet, "/student_technologies/1", nil)
	assert.Equal(t, []map[string]interface{}{{"student_id": float64(1), "technology_id": float64(2)}}, decodeList(t, w))

	w = do(t, r, http.MethodPut, "/student_technologies", gin.H{"student_id": 1, "old_technology_id": 1, "new_technology_id": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/signup", gin.H{"college_email": "a@b.edu", "password": "pw"}).Code)

	w := do(t, r, http.MethodPost, "/projects", gin.H{
		"name": "Drone", "budget": "1250.5", "status": "Ongoing", "start_date": "2024-01-15", "owner_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/projects/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode(t, w)
	assert.Equal(t, "1250.50", p["budget"])
	assert.Equal(t, "2024-01-15", p["start_date"])
	assert.Nil(t, p["end_date"])

	w = do(t, r, http.MethodPost, "/projects", gin.H{"name": "X", "owner_id": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/projects", gin.H{"name": "X", "owner_id": 1, "status": "Paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/projects/1", gin.H{"end_date": "2023-01-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/projects/1", gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Project updated successfully", body["message"])
	assert.Equal(t, "Completed", body["project"].(map[string]interface{})["status"])

	w = do(t, r, http.MethodGet, "/projects/owner/1", nil)
	assert.Len(t, decodeList(t, w), 1)

	w = do(t, r, http.MethodGet, "/projects/names", nil)
	assert.Equal(t, []map[string]interface{}{{"id": float64(1), "name": "Drone"}}, decodeList(t, w))

	w = do(t, r, http.MethodGet, "/projects/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternalErrorAndHealth(t *testing.T) {
	r, db := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = do(t, r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "An error occurred", body["error"])
	assert.NotEmpty(t, body["details"])

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", decode(t, w)["status"])
}

func TestMiddleware(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "http://app.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.local")
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))

	w = do(t, r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
