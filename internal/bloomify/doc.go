// Package bloomify provides an HTTP client for the Bloomify user API.
//
// # Endpoints
//
//   - GET    /api/users/me: the signed-in user's profile
//   - GET    /api/users/sessions: devices holding a session for the user
//   - DELETE /api/users/sessions/{id}: revoke one session
//   - POST   /api/auth/refresh: exchange a refresh token for new tokens
//   - POST   /api/users/profile-picture: multipart picture upload
//
// # Request Handling
//
// Every request carries the bearer access token (when set), the device id in
// X-Device-ID and a User-Agent of sprig/<version>. Requests time out after
// ten seconds; uploads after a minute.
//
// # Errors
//
// Non-2xx responses become *APIError carrying the status, the request path
// and the server's "error" or "message" field. A 401 also matches
// ErrUnauthorized under errors.Is, which the app uses to drop stale tokens.
//
// The client never retries. The poller decides refresh cadence and backoff.
package bloomify
