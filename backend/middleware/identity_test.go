package middleware

import (
	"testing"
	"time"

	"civictrack/backend/lifecycle"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestActorFromToken(t *testing.T) {
	now := time.Now()
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"user_id":       "w42",
		"role":          "worker",
		"department_id": "roads",
		"iat":           now.Unix(),
		"exp":           now.Add(time.Hour).Unix(),
	})

	actor, err := ActorFromToken(tokenString, testSecret)
	if err != nil {
		t.Fatalf("ActorFromToken: unexpected error: %v", err)
	}
	want := lifecycle.Actor{ID: "w42", Role: lifecycle.RoleWorker, DepartmentID: "roads"}
	if actor != want {
		t.Errorf("ActorFromToken: got %+v, want %+v", actor, want)
	}
}

func TestActorFromTokenRejections(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", jwt.MapClaims{
				"user_id": "u1", "role": "citizen", "exp": now.Add(time.Hour).Unix(),
			}),
			secret: testSecret,
		},
		{
			name: "expired",
			token: signToken(t, testSecret, jwt.MapClaims{
				"user_id": "u1", "role": "citizen", "exp": now.Add(-time.Hour).Unix(),
			}),
			secret: testSecret,
		},
		{
			name: "missing user id",
			token: signToken(t, testSecret, jwt.MapClaims{
				"role": "citizen", "exp": now.Add(time.Hour).Unix(),
			}),
			secret: testSecret,
		},
		{
			name: "unknown role",
			token: signToken(t, testSecret, jwt.MapClaims{
				"user_id": "u1", "role": "superuser", "exp": now.Add(time.Hour).Unix(),
			}),
			secret: testSecret,
		},
		{
			name:   "garbage",
			token:  "not.a.token",
			secret: testSecret,
		},
	}
	for _, test := range tests {
		if _, err := ActorFromToken(test.token, test.secret); err == nil {
			t.Errorf("%s: expected error, got none", test.name)
		}
	}
}
