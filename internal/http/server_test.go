package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"techstore/internal/http/handlers"
	"techstore/internal/repos"
)

// newApp spins up the API over a seeded in-memory database.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	app := fiber.New()
	handlers.Routes(app, handlers.NewDeps(db))
	return app, db
}

func jsonReq(method, path, body, sid string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func sidCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c.Value
		}
	}
	return ""
}

// login signs a seeded account in and returns its session id.
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	body := `{"email":"` + email + `","password":"Passw0rd!"}`
	resp, err := app.Test(jsonReq("POST", "/api/auth/login", body, ""))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	sid := sidCookie(resp)
	if sid == "" {
		t.Fatal("no sid cookie issued")
	}
	return sid
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
