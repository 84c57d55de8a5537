package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avrillon/roomscout/pkg/domain"
)

func TestListListingsParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms" {
			t.Errorf("expected path /rooms, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no Authorization header on public endpoint, got %q", r.Header.Get("Authorization"))
		}
		fmt.Fprint(w, `[{"_id":"abc","title":"Loft near canal","price":120,"ratingValue":4.2,"reviews":12,"location":[2.37,48.87],"user":{"_id":"u1","account":{"username":"marie"}}}]`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	listings, err := c.ListListings(context.Background())
	if err != nil {
		t.Fatalf("ListListings: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	l := listings[0]
	if l.ID != "abc" || l.Title != "Loft near canal" || l.Price != 120 {
		t.Errorf("unexpected listing fields: %+v", l)
	}
	if l.RatingValue != 4.2 {
		t.Errorf("expected ratingValue 4.2, got %v", l.RatingValue)
	}
	if l.User.Account.Username != "marie" {
		t.Errorf("expected owner username 'marie', got %q", l.User.Account.Username)
	}
}

func TestListListingsAroundQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms/around" {
			t.Errorf("expected path /rooms/around, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "48.866667" {
			t.Errorf("expected latitude=48.866667, got %q", q.Get("latitude"))
		}
		if q.Get("longitude") != "2.333333" {
			t.Errorf("expected longitude=2.333333, got %q", q.Get("longitude"))
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListListingsAround(context.Background(), domain.Coordinate{Latitude: 48.866667, Longitude: 2.333333})
	if err != nil {
		t.Fatalf("ListListingsAround: %v", err)
	}
}

func TestGetUserSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected 'Bearer tok-123', got %q", got)
		}
		if r.URL.Path != "/user/u1" {
			t.Errorf("expected path /user/u1, got %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"_id":"u1","email":"a@b.c","username":"marie","description":"hi"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	profile, err := c.GetUser(context.Background(), "tok-123", "u1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if profile.Username != "marie" {
		t.Errorf("expected username 'marie', got %q", profile.Username)
	}
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Unauthorized"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetUser(context.Background(), "stale", "u1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsStatus(err, 401) {
		t.Errorf("expected IsStatus(err, 401)=true for %v", err)
	}
	if IsStatus(err, 500) {
		t.Error("expected IsStatus(err, 500)=false")
	}
	if got := UserMessage(err, "fallback"); got != "Unauthorized" {
		t.Errorf("expected server message 'Unauthorized', got %q", got)
	}
}

func TestErrorWithoutMessageUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListListings(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := UserMessage(err, "Something went wrong."); got != "Something went wrong." {
		t.Errorf("expected fallback message, got %q", got)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := New(srv.URL, nil)
	_, err := c.ListListings(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("expected *NetworkError, got %T: %v", err, err)
	}
	if IsStatus(err, 500) {
		t.Error("network failure must not match any HTTP status")
	}
}

func TestMalformedBodyIsUnexpectedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListListings(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var unexpected *UnexpectedError
	if !errors.As(err, &unexpected) {
		t.Errorf("expected *UnexpectedError, got %T: %v", err, err)
	}
}

func TestSignInPostsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/log_in" {
			t.Errorf("expected POST /user/log_in, got %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body) //nolint:errcheck
		if !strings.Contains(string(body), `"email":"a@b.c"`) {
			t.Errorf("expected email in body, got %s", body)
		}
		fmt.Fprint(w, `{"token":"tok-9","id":"u9"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	auth, err := c.SignIn(context.Background(), domain.SignInRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if auth.Token != "tok-9" || auth.UserID != "u9" {
		t.Errorf("unexpected auth response: %+v", auth)
	}
}

func TestUploadPictureMultipartShape(t *testing.T) {
	photoPath := filepath.Join(t.TempDir(), "holiday.png")
	if err := os.WriteFile(photoPath, []byte("fake-png-bytes"), 0600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/user/upload_picture" {
			t.Errorf("expected PUT /user/upload_picture, got %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		files := r.MultipartForm.File["photo"]
		if len(files) != 1 {
			t.Errorf("expected one 'photo' part, got %d", len(files))
			return
		}
		fh := files[0]
		if fh.Filename != "my-pic.png" {
			t.Errorf("expected filename 'my-pic.png', got %q", fh.Filename)
		}
		if ct := fh.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected part content type 'image/png', got %q", ct)
		}
		f, err := fh.Open()
		if err != nil {
			t.Errorf("open part: %v", err)
			return
		}
		defer f.Close()          //nolint:errcheck
		data, _ := io.ReadAll(f) //nolint:errcheck
		if string(data) != "fake-png-bytes" {
			t.Errorf("expected file bytes to round-trip, got %q", data)
		}
		fmt.Fprint(w, `{"_id":"u1","photo":{"url":"https://cdn/x.png"}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	profile, err := c.UploadPicture(context.Background(), "tok-1", photoPath)
	if err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
	if profile.PhotoURL() != "https://cdn/x.png" {
		t.Errorf("expected updated photo URL, got %q", profile.PhotoURL())
	}
}

func TestUploadPictureDefaultsExtensionToJpg(t *testing.T) {
	photoPath := filepath.Join(t.TempDir(), "photo-no-ext")
	if err := os.WriteFile(photoPath, []byte("bytes"), 0600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		fh := r.MultipartForm.File["photo"][0]
		if fh.Filename != "my-pic.jpg" {
			t.Errorf("expected filename 'my-pic.jpg', got %q", fh.Filename)
		}
		if ct := fh.Header.Get("Content-Type"); ct != "image/jpg" {
			t.Errorf("expected content type 'image/jpg', got %q", ct)
		}
		fmt.Fprint(w, `{"_id":"u1"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.UploadPicture(context.Background(), "tok", photoPath); err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
}

func TestUploadPictureMissingFile(t *testing.T) {
	c := New("http://unused", nil)
	_, err := c.UploadPicture(context.Background(), "tok", filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
