package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanuchaudhary/Job-Portal/internal/config"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
)

// newTestRouter assembles the full engine over an in-memory store, so these
// tests cover routing, auth middleware, binding and status mapping together.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:      "8080",
		JWTSecret: []byte("router-test-secret"),
		TokenTTL:  time.Hour,
	}
	store := repositories.NewMemoryStore()

	userService := services.NewUserService(store.Users(), cfg)
	companyService := services.NewCompanyService(store.Companies())
	jobService := services.NewJobService(store.Jobs(), store.Users(), store.Companies())
	applicationService := services.NewApplicationService(store.Applications(), store.Jobs(), store.Users())
	savedJobService := services.NewSavedJobService(store.SavedJobs(), store.Jobs())

	return NewRouter(
		cfg,
		NewUserHandler(userService),
		NewCompanyHandler(companyService),
		NewJobHandler(jobService),
		NewApplicationHandler(applicationService),
		NewSavedJobHandler(savedJobService),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func signup(t *testing.T, r *gin.Engine, email, fullName, role string) (token, id string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/user/signup", "", gin.H{
		"email":    email,
		"password": "hunter22",
		"fullName": fullName,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	token, _ = body["token"].(string)
	user, _ := body["user"].(map[string]any)
	id, _ = user["id"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, id)
	return token, id
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignupAndSignin(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/user/signup", "", gin.H{
		"email":    "alice@example.com",
		"password": "hunter22",
		"fullName": "Alice Example",
		"role":     "Candidate",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
	_, leaked := user["password"]
	assert.False(t, leaked, "auth responses must not carry the hash")

	// duplicate email
	w = doJSON(t, r, http.MethodPost, "/user/signup", "", gin.H{
		"email":    "alice@example.com",
		"password": "hunter22",
		"fullName": "Alice Again",
		"role":     "Candidate",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// malformed email never reaches the service
	w = doJSON(t, r, http.MethodPost, "/user/signup", "", gin.H{
		"email":    "not-an-email",
		"password": "hunter22",
		"fullName": "Nobody",
		"role":     "Candidate",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/signin", "", gin.H{
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["token"])

	// unknown email answers 409, wrong password 401
	w = doJSON(t, r, http.MethodPost, "/user/signin", "", gin.H{
		"email":    "ghost@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/signin", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/me"},
		{http.MethodGet, "/user/bulk"},
		{http.MethodPost, "/user/application/some-job"},
		{http.MethodPost, "/company/create"},
		{http.MethodGet, "/job/bulk"},
		{http.MethodPost, "/user/savejob/some-job"},
	}
	for _, route := range protected {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", route.method, route.path)
	}

	w := doJSON(t, r, http.MethodGet, "/user/me", "not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationLifecycle(t *testing.T) {
	r := newTestRouter(t)

	recruiterToken, _ := signup(t, r, "rita@example.com", "Rita Recruiter", "Recruiter")
	candidateToken, _ := signup(t, r, "carl@example.com", "Carl Candidate", "Candidate")

	// company creation answers 200, not 201
	w := doJSON(t, r, http.MethodPost, "/company/create", recruiterToken, gin.H{
		"name": "Acme",
		"logo": "https://cdn.example.com/acme.png",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	companyID := decode(t, w)["company"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/job/create", recruiterToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Own the Go services",
		"location":    "Remote",
		"companyId":   companyID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	jobID := decode(t, w)["job"].(map[string]any)["id"].(string)

	application := gin.H{
		"education":  "BSc Computer Science",
		"experience": "3 years Go",
		"skills":     "Go, Postgres",
		"resume":     "https://cdn.example.com/resumes/carl.pdf",
	}

	w = doJSON(t, r, http.MethodPost, "/user/application/"+jobID, candidateToken, application)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["application"].(map[string]any)
	assert.Equal(t, "Applied", created["status"])
	assert.Equal(t, true, created["isApplied"])
	applicationID := created["id"].(string)

	// the legacy quirk codes: duplicate 402, missing job 401,
	// recruiter caller 404
	w = doJSON(t, r, http.MethodPost, "/user/application/"+jobID, candidateToken, application)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/application/no-such-job", candidateToken, application)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/application/"+jobID, recruiterToken, application)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// a missing field fails binding
	w = doJSON(t, r, http.MethodPost, "/user/application/"+jobID, candidateToken, gin.H{
		"education": "BSc", "experience": "3y", "skills": "Go",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// listing is recruiter-only, candidate answers 403, missing job 404
	w = doJSON(t, r, http.MethodGet, "/user/allapplications/"+jobID, recruiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	apps := decode(t, w)["applications"].([]any)
	require.Len(t, apps, 1)
	applicant := apps[0].(map[string]any)["applicant"].(map[string]any)
	assert.Equal(t, "carl@example.com", applicant["email"])

	w = doJSON(t, r, http.MethodGet, "/user/allapplications/"+jobID, candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/allapplications/no-such-job", recruiterToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// status moves to Interviewing and shows up in the candidate's profile
	w = doJSON(t, r, http.MethodPut, "/user/status", recruiterToken, gin.H{
		"applicationId": applicationID,
		"status":        "Interviewing",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Interviewing", decode(t, w)["application"].(map[string]any)["status"])

	w = doJSON(t, r, http.MethodPut, "/user/status", recruiterToken, gin.H{
		"applicationId": applicationID,
		"status":        "Ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/user/status", recruiterToken, gin.H{
		"applicationId": "no-such-application",
		"status":        "Hired",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/user/status", candidateToken, gin.H{
		"applicationId": applicationID,
		"status":        "Hired",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/me", candidateToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile := decode(t, w)["user"].(map[string]any)
	profileApps := profile["applications"].([]any)
	require.Len(t, profileApps, 1)
	firstApp := profileApps[0].(map[string]any)
	assert.Equal(t, "Interviewing", firstApp["status"])
	job := firstApp["job"].(map[string]any)
	assert.Equal(t, "Backend Engineer", job["title"])
	assert.Equal(t, "Acme", job["company"].(map[string]any)["name"])
}

func TestSavedJobsFlow(t *testing.T) {
	r := newTestRouter(t)

	recruiterToken, _ := signup(t, r, "rita@example.com", "Rita Recruiter", "Recruiter")
	candidateToken, _ := signup(t, r, "carl@example.com", "Carl Candidate", "Candidate")

	w := doJSON(t, r, http.MethodPost, "/job/create", recruiterToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Own the Go services",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	jobID := decode(t, w)["job"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/user/savejob/"+jobID, candidateToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	saved := decode(t, w)["savedJob"].(map[string]any)
	assert.Equal(t, "Backend Engineer", saved["job"].(map[string]any)["title"])

	w = doJSON(t, r, http.MethodPost, "/user/savejob/"+jobID, candidateToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/savejob/no-such-job", candidateToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/savedjobs", candidateToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["savedJobs"].([]any), 1)

	w = doJSON(t, r, http.MethodPost, "/user/unsavejob/"+jobID, candidateToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/unsavejob/"+jobID, candidateToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/savedjobs", candidateToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["savedJobs"])
}

func TestCompanyEndpoints(t *testing.T) {
	r := newTestRouter(t)

	token, _ := signup(t, r, "rita@example.com", "Rita Recruiter", "Recruiter")

	w := doJSON(t, r, http.MethodPost, "/company/create", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// duplicate name answers 400, not 409
	w = doJSON(t, r, http.MethodPost, "/company/create", token, gin.H{"name": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/company/create", token, gin.H{"logo": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")

	w = doJSON(t, r, http.MethodGet, "/company/bulk", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	companies := decode(t, w)["companies"].([]any)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].(map[string]any)["name"])

	w = doJSON(t, r, http.MethodPost, "/company/find", token, gin.H{"name": "acm"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["companies"].([]any), 1)

	w = doJSON(t, r, http.MethodPost, "/company/find", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobEndpoints(t *testing.T) {
	r := newTestRouter(t)

	recruiterToken, _ := signup(t, r, "rita@example.com", "Rita Recruiter", "Recruiter")
	candidateToken, _ := signup(t, r, "carl@example.com", "Carl Candidate", "Candidate")

	w := doJSON(t, r, http.MethodPost, "/job/create", candidateToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Own the Go services",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/job/create", recruiterToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Own the Go services",
		"companyId":   "no-such-company",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/job/create", recruiterToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Own the Go services",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["job"].(map[string]any)
	assert.Equal(t, true, created["isOpen"])

	w = doJSON(t, r, http.MethodGet, "/job/bulk", recruiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["jobs"].([]any), 1)

	w = doJSON(t, r, http.MethodPost, "/job/find", recruiterToken, gin.H{"title": "backend"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["jobs"].([]any), 1)

	w = doJSON(t, r, http.MethodPost, "/job/find", recruiterToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserSelfService(t *testing.T) {
	r := newTestRouter(t)

	aliceToken, _ := signup(t, r, "alice@example.com", "Alice Example", "Candidate")
	signup(t, r, "bob@example.com", "Bob Example", "Recruiter")

	// raw reads serialize the stored record, hash included
	w := doJSON(t, r, http.MethodGet, "/user/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)["user"].(map[string]any)
	assert.NotEmpty(t, me["password"], "raw reads carry the stored hash")

	w = doJSON(t, r, http.MethodGet, "/user/bulk?filter=bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@example.com", users[0].(map[string]any)["email"])

	w = doJSON(t, r, http.MethodGet, "/user/bulk", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"].([]any), 2)

	w = doJSON(t, r, http.MethodPut, "/user/update", aliceToken, gin.H{"fullName": "Alice Renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Alice Renamed", decode(t, w)["user"].(map[string]any)["fullName"])

	w = doJSON(t, r, http.MethodPost, "/user/remove", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the token still parses after deletion; the profile lookup is what fails
	w = doJSON(t, r, http.MethodGet, "/user/me", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/remove", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "row already gone")
}
