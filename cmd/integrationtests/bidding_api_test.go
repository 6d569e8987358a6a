package integrationtests

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"marketplace-bidding/internal/server"
	"marketplace-bidding/internal/session"
	"marketplace-bidding/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

// Helper to create a posting through the API and return its id
func createPosting(t *testing.T, env TestEnv, owner string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/postings", owner, helpers.CreatePostingRequest{
		Name:           "Kitchen shelves",
		Address:        "12 Galle Road, Colombo",
		Description:    "Three oak shelves",
		Categories:     "Woodwork",
		BidClosingTime: time.Now().UTC().Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return DataMap(t, resp)["id"].(string)
}

func TestHealth(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// Buyer posts, entrepreneur bids, buyer accepts
func TestBidLifecycle(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	SeedProfile(t, env, "ent1", "entrepreneur", "Nimal")

	postingID := createPosting(t, env, "buyer1")

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/postings/"+postingID+"/bids", "ent1",
		helpers.PlaceBidRequest{Amount: "Rs. Rs. 500"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bid := DataMap(t, resp)["bid"].(map[string]any)
	require.Equal(t, "Rs. 500", bid["display_amount"])
	require.Equal(t, "pending", bid["status"])
	placedBidID := bid["id"].(string)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications", "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	inbox := DataList(t, resp)
	require.Len(t, inbox, 1)
	note := inbox[0].(map[string]any)
	require.Equal(t, postingID, note["bid_id"])
	require.Equal(t, "You have received a new bid of Rs. 500 from Entrepreneur Nimal.", note["message"])

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/postings/"+postingID+"/bids", "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, DataList(t, resp), 1)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids/"+placedBidID+"/accept", "ent1", nil)
	require.Equal(t, http.StatusForbidden, w.Code, "entrepreneurs cannot accept")

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids/"+placedBidID+"/accept", "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "accepted", DataMap(t, resp)["bid"].(map[string]any)["status"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids/"+placedBidID+"/accept", "buyer1", nil)
	require.Equal(t, http.StatusConflict, w.Code, "second accept is rejected")

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications", "buyer1", nil)
	require.Empty(t, DataList(t, resp), "buyer notification removed")

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications", "ent1", nil)
	entInbox := DataList(t, resp)
	require.Len(t, entInbox, 1)
	accepted := entInbox[0].(map[string]any)
	require.Equal(t, "Your bid has been accepted by Asha", accepted["message"])
	require.Equal(t, true, accepted["unread"])

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications/unread-count", "ent1", nil)
	require.Equal(t, 1.0, DataMap(t, resp)["unread"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/notifications/"+accepted["id"].(string)+"/read", "ent1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications/unread-count", "ent1", nil)
	require.Equal(t, 0.0, DataMap(t, resp)["unread"])

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/bids/mine", "ent1", nil)
	mine := DataList(t, resp)
	require.Len(t, mine, 1)
	require.Equal(t, "accepted", mine[0].(map[string]any)["status"])
}

// PlaceBid input handling at the API boundary
func TestPlaceBid(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	SeedProfile(t, env, "ent1", "entrepreneur", "Nimal")
	postingID := createPosting(t, env, "buyer1")

	tests := []struct {
		name       string
		userID     string
		postingID  string
		request    any
		wantStatus int
		wantAmount string
	}{
		{name: "Valid_Bid", userID: "ent1", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "Rs. 1500"}, wantStatus: http.StatusCreated, wantAmount: "Rs. 1500"},
		{name: "Sanitised_Input", userID: "ent1", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "abc12.5.3x"}, wantStatus: http.StatusCreated, wantAmount: "Rs. 12.53"},
		{name: "Smallest_Amount", userID: "ent1", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "0.01"}, wantStatus: http.StatusCreated, wantAmount: "Rs. 0.01"},
		{name: "Zero_Amount", userID: "ent1", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "0"}, wantStatus: http.StatusBadRequest},
		{name: "Missing_Amount", userID: "ent1", postingID: postingID, request: map[string]any{}, wantStatus: http.StatusBadRequest},
		{name: "Invalid_JSON", userID: "ent1", postingID: postingID, request: "{amount: 100}", wantStatus: http.StatusBadRequest},
		{name: "Unknown_Posting", userID: "ent1", postingID: "nope", request: helpers.PlaceBidRequest{Amount: "100"}, wantStatus: http.StatusNotFound},
		{name: "Buyer_Cannot_Bid", userID: "buyer1", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "100"}, wantStatus: http.StatusForbidden},
		{name: "Anonymous", userID: "", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "100"}, wantStatus: http.StatusUnauthorized},
		{name: "No_Profile_Yet", userID: "stranger", postingID: postingID, request: helpers.PlaceBidRequest{Amount: "100"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/postings/"+tt.postingID+"/bids", tt.userID, tt.request)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusCreated {
				bid := DataMap(t, resp)["bid"].(map[string]any)
				require.Equal(t, tt.wantAmount, bid["display_amount"])
				require.Equal(t, "ent1", bid["entrepreneur_id"])
				_, err := time.Parse(time.RFC3339, bid["timestamp"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// Bids beyond the per-user rate are throttled
func TestPlaceBid_RateLimited(t *testing.T) {
	env := SetupTestRouter(t, server.Options{BidRateLimit: 0.01, BidRateBurst: 2})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	SeedProfile(t, env, "ent1", "entrepreneur", "Nimal")
	SeedProfile(t, env, "ent2", "entrepreneur", "Kamal")
	postingID := createPosting(t, env, "buyer1")

	path := "/postings/" + postingID + "/bids"
	for i := 0; i < 2; i++ {
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, path, "ent1", helpers.PlaceBidRequest{Amount: "100"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, path, "ent1", helpers.PlaceBidRequest{Amount: "100"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "too many requests", resp["message"])
	require.NotEmpty(t, w.Header().Get("Retry-After"))

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, path, "ent2", helpers.PlaceBidRequest{Amount: "100"})
	require.Equal(t, http.StatusCreated, w.Code)
}

// Accept by entrepreneur id, scoped to a posting
func TestAcceptByEntrepreneur(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	SeedProfile(t, env, "ent1", "entrepreneur", "Nimal")
	postingID := createPosting(t, env, "buyer1")

	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/entrepreneurs/ent1/accept", "buyer1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/postings/"+postingID+"/bids", "ent1", helpers.PlaceBidRequest{Amount: "250"})
	require.Equal(t, http.StatusCreated, w.Code)

	q := url.Values{"posting_id": {postingID}}
	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/entrepreneurs/ent1/accept?"+q.Encode(), "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "ent1", DataMap(t, resp)["bid"].(map[string]any)["entrepreneur_id"])
}

// Bulk notification delete with one unknown id
func TestDeleteNotifications(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	postingID := createPosting(t, env, "buyer1")

	for i := 0; i < 3; i++ {
		uid := fmt.Sprintf("ent%d", i)
		SeedProfile(t, env, uid, "entrepreneur", "E"+uid)
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/postings/"+postingID+"/bids", uid, helpers.PlaceBidRequest{Amount: "100"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, _ := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications", "buyer1", nil)
	inbox := DataList(t, resp)
	require.Len(t, inbox, 3)
	first := inbox[0].(map[string]any)["id"].(string)
	second := inbox[1].(map[string]any)["id"].(string)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/notifications", "buyer1",
		helpers.DeleteNotificationsRequest{IDs: []string{first, second}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, DataMap(t, resp)["deleted"], 2)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/notifications", "buyer1",
		helpers.DeleteNotificationsRequest{IDs: []string{inbox[2].(map[string]any)["id"].(string), "missing"}})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, []any{"missing"}, DataMap(t, resp)["failed"])

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/notifications/unread-count", "buyer1", nil)
	require.Equal(t, 0.0, DataMap(t, resp)["unread"])
}

// Posting edit, listing, image upload and delete
func TestPostingManagement(t *testing.T) {
	env := SetupTestRouter(t, server.Options{MaxImageBytes: 1024})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")
	SeedProfile(t, env, "buyer2", "buyer", "Ravi")
	postingID := createPosting(t, env, "buyer1")

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPatch, "/postings/"+postingID, "buyer1",
		map[string]any{"description": "<i>Four</i> oak shelves", "categories": "Pottery"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "Four oak shelves", DataMap(t, resp)["description"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPatch, "/postings/"+postingID, "buyer2", map[string]any{"name": "Mine now"})
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/postings?category=Pottery&open=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, DataList(t, resp), 1)

	upload := func(userID string, data []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, err := mw.CreateFormFile("image", "photo")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPut, "/postings/"+postingID+"/image", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set(session.HeaderUserID, userID)
		w := httptest.NewRecorder()
		env.Router.ServeHTTP(w, req)
		return w
	}

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	require.Equal(t, http.StatusBadRequest, upload("buyer1", []byte("just some text")).Code)
	require.Equal(t, http.StatusRequestEntityTooLarge, upload("buyer1", bytes.Repeat([]byte{0x89}, 2048)).Code)
	require.Equal(t, http.StatusForbidden, upload("buyer2", png).Code)

	w = upload("buyer1", png)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp, _ = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/postings/"+postingID, "", nil)
	imagePath := DataMap(t, resp)["image_path"].(string)
	imageURL, err := url.Parse(DataMap(t, resp)["image"].(string))
	require.NoError(t, err)

	img := ExecuteRequest(t, env.Router, http.MethodGet, imageURL.Path, "", nil)
	require.Equal(t, http.StatusOK, img.Code)
	require.Equal(t, "image/png", img.Header().Get("Content-Type"))
	require.Equal(t, png, img.Body.Bytes())

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/postings/"+postingID, "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, _, ok := env.Objects.Get(imagePath)
	require.False(t, ok, "image removed with the posting")

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/postings/"+postingID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Profiles and categories
func TestProfilesAndCategories(t *testing.T) {
	env := SetupTestRouter(t, server.Options{})
	SeedProfile(t, env, "buyer1", "buyer", "Asha")

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/profiles/buyer1", "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "buyer", DataMap(t, resp)["role"])
	require.Equal(t, "buyer1@example.com", DataMap(t, resp)["email"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPut, "/profile", "buyer1", map[string]any{"username": "Asha", "role": "entrepreneur"})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/categories", "", helpers.CategoryRequest{Name: "Textiles"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/categories", "buyer1", helpers.CategoryRequest{Name: "Textiles"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/categories", "buyer1", helpers.CategoryRequest{Name: "textiles"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, DataList(t, resp), 3)
}
