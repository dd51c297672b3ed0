package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"golang.org/x/crypto/bcrypt"

	"techstore/internal/http/handlers"
	"techstore/internal/repos"
)

// Seeded passwords must be stored hashed, never plaintext.
func TestPasswordsSeededAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") {
			t.Fatalf("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Passw0rd!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestLoginSuccessFailAndThrottle(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	app := fiber.New()
	handlers.Routes(app, handlers.NewDeps(db),
		limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}))

	// bad password -> 401
	respBad, err := app.Test(jsonReq("POST", "/api/auth/login",
		`{"email":"alice@techstore.test","password":"Wrongpass1!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respBad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", respBad.StatusCode)
	}

	// good password -> 200 with session cookie
	respGood, err := app.Test(jsonReq("POST", "/api/auth/login",
		`{"email":"alice@techstore.test","password":"Passw0rd!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respGood.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on success, got %d", respGood.StatusCode)
	}
	if sidCookie(respGood) == "" {
		t.Fatal("no sid cookie on login")
	}

	// throttle after 2 attempts (we already did 2; a third should 429)
	respThird, err := app.Test(jsonReq("POST", "/api/auth/login",
		`{"email":"alice@techstore.test","password":"Wrongpass1!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respThird.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", respThird.StatusCode)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	app, _ := newApp(t)
	sid := login(t, app, "alice@techstore.test")

	resp, err := app.Test(jsonReq("POST", "/api/auth/logout", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}

	// Session no longer usable
	resp, err = app.Test(jsonReq("GET", "/api/orders/my", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}
