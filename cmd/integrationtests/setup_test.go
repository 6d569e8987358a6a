package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bidding "marketplace-bidding/internal/biddingService"
	"marketplace-bidding/internal/locker"
	"marketplace-bidding/internal/objectstore"
	"marketplace-bidding/internal/repository"
	"marketplace-bidding/internal/server"
	"marketplace-bidding/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestEnv bundles the router with the in-memory backends behind it
type TestEnv struct {
	Router  *gin.Engine
	Repo    *repository.MemoryRepo
	Objects *objectstore.MemoryStore
}

// SetupTestRouter initializes the router with in-memory backends for integration testing.
func SetupTestRouter(t *testing.T, opts server.Options) TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if opts.BidRateLimit == 0 {
		opts.BidRateLimit = 1000
		opts.BidRateBurst = 1000
	}
	if opts.MaxImageBytes == 0 {
		opts.MaxImageBytes = 1 << 20
	}

	repo := repository.NewMemoryRepo()
	objects, err := objectstore.NewMemoryStore("http://localhost:8080/objects")
	require.NoError(t, err)

	service := bidding.NewBiddingService(repo, objects, locker.NewMemoryLocker(), bidding.WithMaxImageBytes(opts.MaxImageBytes))
	_, err = service.EnsureCategories(context.Background(), []string{"Woodwork", "Pottery"})
	require.NoError(t, err)

	opts.Objects = objects

	router := server.SetupRouter(service, session.HeaderVerifier{}, opts)
	return TestEnv{Router: router, Repo: repo, Objects: objects}
}

// ExecuteRequest executes an HTTP request as userID and returns the response recorder.
// An empty userID sends the request anonymously.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(session.HeaderUserID, userID)
		req.Header.Set(session.HeaderUserEmail, userID+"@example.com")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataMap returns the data object of a success envelope
func DataMap(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp)
	return data
}

// DataList returns the data array of a success envelope
func DataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "response data is not a list: %v", resp)
	return data
}

// SeedProfile registers a user through the API
func SeedProfile(t *testing.T, env TestEnv, uid, role, username string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPut, "/profile", uid, map[string]any{
		"username": username,
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
