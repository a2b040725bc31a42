package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage/sqlite"
)

func newTestAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store)
}

func TestPasswordAuthenticator_RegisterAndAuthenticate(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}

	got, err := a.Authenticate(ctx, "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user ID = %s, want %s", got.ID, user.ID)
	}

	if _, err := a.Authenticate(ctx, "admin", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Authenticate(ctx, "nobody", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordAuthenticator_RegisterErrors(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "admin", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password error = %v, want ErrWeakPassword", err)
	}
	if _, err := a.Register(ctx, "admin", "long-enough"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := a.Register(ctx, "admin", "another-one"); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("duplicate error = %v, want ErrUsernameExists", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if err := EnsureAdmin(ctx, a, "admin", "first-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if err := EnsureAdmin(ctx, a, "admin", "second-password"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}

	// The original password stays in effect.
	if _, err := a.Authenticate(ctx, "admin", "first-password"); err != nil {
		t.Errorf("original password rejected: %v", err)
	}
	if _, err := a.Authenticate(ctx, "admin", "second-password"); err == nil {
		t.Error("expected second password to be rejected")
	}
}

func TestPasswordAuthenticator_User(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "admin", "long-enough")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	got, err := a.User(ctx, user.ID)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if got.Username != "admin" {
		t.Errorf("username = %s, want admin", got.Username)
	}
	if _, err := a.User(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user error = %v, want ErrUserNotFound", err)
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	a := newTestAuthenticator(t)
	user, err := a.Register(context.Background(), "admin", "long-enough")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "admin" || claims.Issuer != Issuer {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.IsAdmin() {
		t.Errorf("role = %q, want admin", claims.Role)
	}

	stored, err := a.Authenticate(context.Background(), "admin", "long-enough")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if stored.Role != models.RoleAdmin {
		t.Errorf("stored role = %q, want admin", stored.Role)
	}
	if _, err := m.Authorize(token); err != nil {
		t.Errorf("Authorize failed: %v", err)
	}
}

func TestJWTManager_AuthorizeRequiresAdmin(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.Generate(&models.User{ID: "u1", Username: "legacy"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Validate(token); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if _, err := m.Authorize(token); !errors.Is(err, ErrForbidden) {
		t.Errorf("Authorize error = %v, want ErrForbidden", err)
	}
}

func TestJWTManager_RejectsForeignTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, claims *Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		return token
	}
	claims := func(issuer string, expires *jwt.NumericDate) *Claims {
		return &Claims{
			UserID: "u1",
			Role:   models.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   "u1",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: expires,
			},
		}
	}
	inAnHour := jwt.NewNumericDate(now.Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"other issuer", sign(jwt.SigningMethodHS256, []byte("test-secret"), claims("someone-else", inAnHour))},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte("test-secret"), claims(Issuer, nil))},
		{"HS512", sign(jwt.SigningMethodHS512, []byte("test-secret"), claims(Issuer, inAnHour))},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims(Issuer, inAnHour))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	a := newTestAuthenticator(t)
	user, err := a.Register(context.Background(), "admin", "long-enough")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	expired := NewJWTManager("test-secret", -time.Minute)
	token, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	valid := NewJWTManager("test-secret", time.Hour)
	if _, err := valid.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token error = %v, want ErrInvalidToken", err)
	}

	good, err := valid.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(good); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret error = %v, want ErrInvalidToken", err)
	}

	tampered := good[:strings.LastIndex(good, ".")+1] + "bogus"
	if _, err := valid.Validate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered token error = %v, want ErrInvalidToken", err)
	}
}
