package bloomify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL, opts...)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultAPIURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultAPIURL)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("api.example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
}

func TestClient_FetchProfileSendsHeadersAndUnwraps(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"bare":    `{"first_name":"Ada","lastName":"Lovelace","rating":"4.5"}`,
		"user":    `{"user":{"first_name":"Ada","lastName":"Lovelace","rating":"4.5"}}`,
		"data":    `{"data":{"user":{"first_name":"Ada","lastName":"Lovelace","rating":4.5}}}`,
		"dataRaw": `{"data":{"firstName":"Ada","last_name":"Lovelace","rating":4.5}}`,
	}
	for name, body := range bodies {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var gotAuth, gotDevice, gotUA string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/users/me" {
					http.NotFound(w, r)
					return
				}
				gotAuth = r.Header.Get("Authorization")
				gotDevice = r.Header.Get("X-Device-ID")
				gotUA = r.Header.Get("User-Agent")
				_, _ = io.WriteString(w, body)
			}, WithToken("tok"), WithDeviceID("dev-1"), WithUserAgent("sprig/test"))

			u, err := c.FetchProfile(testContext(t))
			if err != nil {
				t.Fatalf("FetchProfile returned error: %v", err)
			}
			if u.FirstName != "Ada" || u.LastName != "Lovelace" || u.Rating != 4.5 {
				t.Fatalf("FetchProfile = %#v", u)
			}
			if gotAuth != "Bearer tok" {
				t.Fatalf("Authorization = %q, want Bearer tok", gotAuth)
			}
			if gotDevice != "dev-1" {
				t.Fatalf("X-Device-ID = %q, want dev-1", gotDevice)
			}
			if gotUA != "sprig/test" {
				t.Fatalf("User-Agent = %q, want sprig/test", gotUA)
			}
		})
	}
}

func TestClient_NoTokenSendsNoAuthorization(t *testing.T) {
	var sawAuth atomic.Bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			sawAuth.Store(true)
		}
		_ = json.NewEncoder(w).Encode(sessionListResponse{})
	})
	if _, err := c.FetchSessions(testContext(t)); err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if sawAuth.Load() {
		t.Fatalf("Authorization header sent without a token")
	}
}

func TestClient_FetchSessionsAndRevoke(t *testing.T) {
	var deletedPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/sessions":
			_, _ = io.WriteString(w, `{"sessions":[
				{"id":"s1","device":"Pixel 8","ip":"10.0.0.2","last_active":"2025-01-02T03:04:05Z","current":true},
				{"id":"s 2","device":"","ip":"10.0.0.3"}
			]}`)
		case r.Method == http.MethodDelete:
			deletedPath = r.URL.EscapedPath()
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}, WithToken("tok"))

	ctx := testContext(t)
	sessions, err := c.FetchSessions(ctx)
	if err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if !sessions[0].Current || sessions[0].Label() != "Pixel 8" {
		t.Fatalf("sessions[0] = %#v", sessions[0])
	}
	if got := sessions[0].ParsedLastActive(); got.Year() != 2025 {
		t.Fatalf("ParsedLastActive = %v, want 2025", got)
	}
	if sessions[1].Label() != "s 2" {
		t.Fatalf("Label = %q, want id fallback", sessions[1].Label())
	}
	if !sessions[1].ParsedLastActive().IsZero() {
		t.Fatalf("ParsedLastActive of empty value should be zero")
	}

	if err := c.RevokeSession(ctx, "s 2"); err != nil {
		t.Fatalf("RevokeSession returned error: %v", err)
	}
	if deletedPath != "/api/users/sessions/s%202" {
		t.Fatalf("DELETE path = %q", deletedPath)
	}
	if err := c.RevokeSession(ctx, " "); err == nil {
		t.Fatalf("RevokeSession with empty id returned nil error")
	}
}

func TestClient_RefreshTokenUpdatesBearer(t *testing.T) {
	var gotRefresh string
	var lastAuth atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastAuth.Store(r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/auth/refresh":
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			var req refreshRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			gotRefresh = req.RefreshToken
			_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "new-access"})
		default:
			_, _ = io.WriteString(w, `{"sessions":[]}`)
		}
	}, WithToken("old-access"))

	ctx := testContext(t)
	pair, err := c.RefreshToken(ctx, "r1")
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if gotRefresh != "r1" {
		t.Fatalf("refresh_token sent = %q, want r1", gotRefresh)
	}
	if pair.AccessToken != "new-access" || pair.RefreshToken != "r1" {
		t.Fatalf("pair = %#v, want new access and original refresh", pair)
	}
	if c.Token() != "new-access" {
		t.Fatalf("Token() = %q, want new-access", c.Token())
	}
	if _, err := c.FetchSessions(ctx); err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if got := lastAuth.Load().(string); got != "Bearer new-access" {
		t.Fatalf("Authorization = %q, want Bearer new-access", got)
	}

	if _, err := c.RefreshToken(ctx, ""); err == nil {
		t.Fatalf("RefreshToken with empty token returned nil error")
	}
}

func TestClient_RefreshTokenRejectsEmptyAccessToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}, WithToken("old"))
	if _, err := c.RefreshToken(testContext(t), "r1"); err == nil {
		t.Fatalf("RefreshToken returned nil error for empty access_token")
	}
	if c.Token() != "old" {
		t.Fatalf("Token() = %q, want old token kept", c.Token())
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/me":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Token expired"}`)
		case "/api/users/sessions":
			_, _ = io.WriteString(w, "{")
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "boom")
		}
	})
	ctx := testContext(t)

	_, err := c.FetchProfile(ctx)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("FetchProfile error = %v, want ErrUnauthorized", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchProfile error = %T, want *APIError", err)
	}
	if apiErr.Message != "Token expired" || apiErr.Path != "/api/users/me" {
		t.Fatalf("APIError = %#v", apiErr)
	}

	_, err = c.FetchSessions(ctx)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchSessions error = %v, want decode error", err)
	}

	err = c.RevokeSession(ctx, "x")
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("500 must not match ErrUnauthorized")
	}
	if err == nil || !strings.Contains(err.Error(), "status 500: boom") {
		t.Fatalf("RevokeSession error = %v, want status 500 with body", err)
	}
}

type recordingStager struct {
	dir   string
	names []string
}

func (s *recordingStager) Stage(pattern string) (*os.File, error) {
	f, err := os.CreateTemp(s.dir, pattern)
	if err == nil {
		s.names = append(s.names, f.Name())
	}
	return f, err
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func assertStagingEmpty(t *testing.T, s *recordingStager) {
	t.Helper()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("staging dir has %d leftover files", len(entries))
	}
}

func TestUploadProfilePicture_ExtractsURLInOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"data.user", `{"data":{"user":{"profile_picture":"https://a/1.png"}},"profile_picture":"https://a/3.png"}`, "https://a/1.png"},
		{"user", `{"user":{"profile_picture":"https://a/2.png"},"profile_picture":"https://a/3.png"}`, "https://a/2.png"},
		{"top", `{"profile_picture":"https://a/3.png","data":{"profile_picture":"https://a/4.png"}}`, "https://a/3.png"},
		{"data", `{"data":{"profile_picture":"https://a/4.png"}}`, "https://a/4.png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotField, gotType string
			stager := &recordingStager{dir: t.TempDir()}
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/api/users/profile-picture" {
					http.NotFound(w, r)
					return
				}
				file, header, err := r.FormFile("profile_picture")
				if err == nil {
					gotField = header.Filename
					gotType = header.Header.Get("Content-Type")
					_ = file.Close()
				}
				_, _ = io.WriteString(w, tc.body)
			}, WithStager(stager), WithToken("tok"))

			path := writeFile(t, "me.png", pngHeader)
			got, err := c.UploadProfilePicture(testContext(t), path)
			if err != nil {
				t.Fatalf("UploadProfilePicture returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("url = %q, want %q", got, tc.want)
			}
			if gotField != "me.png" || gotType != "image/png" {
				t.Fatalf("part filename=%q type=%q", gotField, gotType)
			}
			if len(stager.names) != 1 {
				t.Fatalf("staged %d files, want 1", len(stager.names))
			}
			assertStagingEmpty(t, stager)
		})
	}
}

func TestUploadProfilePicture_MissingURL(t *testing.T) {
	stager := &recordingStager{dir: t.TempDir()}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"user":{"profile_picture":""}},"ok":true}`)
	}, WithStager(stager))

	_, err := c.UploadProfilePicture(testContext(t), writeFile(t, "me.png", pngHeader))
	if !errors.Is(err, ErrMissingPictureURL) {
		t.Fatalf("error = %v, want ErrMissingPictureURL", err)
	}
	assertStagingEmpty(t, stager)
}

func TestUploadProfilePicture_TooLargeSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	stager := &recordingStager{dir: t.TempDir()}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, WithStager(stager))

	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.Truncate(MaxPictureBytes + 1); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	_ = f.Close()

	_, err = c.UploadProfilePicture(testContext(t), path)
	if !errors.Is(err, ErrPictureTooLarge) {
		t.Fatalf("error = %v, want ErrPictureTooLarge", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}
	if len(stager.names) != 0 {
		t.Fatalf("staged %d files, want 0", len(stager.names))
	}
}

func TestUploadProfilePicture_RejectsNonImageAndCleansUp(t *testing.T) {
	var hits atomic.Int32
	stager := &recordingStager{dir: t.TempDir()}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}, WithStager(stager))

	_, err := c.UploadProfilePicture(testContext(t), writeFile(t, "notes.txt", []byte("hello world")))
	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("error = %v, want ErrNotAnImage", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}
	assertStagingEmpty(t, stager)
}

func TestUploadProfilePicture_ServerErrorCleansUp(t *testing.T) {
	stager := &recordingStager{dir: t.TempDir()}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"bad image"}`)
	}, WithStager(stager))

	_, err := c.UploadProfilePicture(testContext(t), writeFile(t, "me.png", pngHeader))
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "bad image" {
		t.Fatalf("error = %v, want APIError with message", err)
	}
	assertStagingEmpty(t, stager)
}

func TestUploadProfilePicture_MissingFile(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.UploadProfilePicture(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if err == nil || !strings.Contains(err.Error(), "stat picture") {
		t.Fatalf("error = %v, want stat picture error", err)
	}
}
