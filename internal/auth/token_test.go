package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// MakeToken builds an unsigned token with the given claims. The signature
// segment is junk on purpose: the storefront never checks it.
func MakeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(body)
	return header + "." + payload + ".sig"
}

func TestInspect(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		token   string
		wantErr error
	}{
		"empty token": {
			token:   "",
			wantErr: ErrMalformed,
		},
		"not three segments": {
			token:   "abc",
			wantErr: ErrMalformed,
		},
		"two segments": {
			token:   "aaa.bbb",
			wantErr: ErrMalformed,
		},
		"four segments": {
			token:   "a.b.c.d",
			wantErr: ErrMalformed,
		},
		"payload not base64": {
			token:   "aaa.!!!.ccc",
			wantErr: ErrMalformed,
		},
		"payload not json": {
			token:   "aaa." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".ccc",
			wantErr: ErrMalformed,
		},
		"exp in the past": {
			token:   MakeToken(t, map[string]any{"exp": now.Add(-time.Hour).Unix()}),
			wantErr: ErrExpired,
		},
		"exp in the future": {
			token:   MakeToken(t, map[string]any{"exp": now.Add(time.Hour).Unix()}),
			wantErr: nil,
		},
		"no exp claim": {
			token:   MakeToken(t, map[string]any{"sub": "user-1"}),
			wantErr: nil,
		},
		"non-numeric exp": {
			token:   MakeToken(t, map[string]any{"exp": "tomorrow"}),
			wantErr: ErrMalformed,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Inspect(tc.token, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Inspect() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestInspectPaddedBase64Payload(t *testing.T) {
	// Some issuers pad the payload segment; it should still decode.
	payload := base64.StdEncoding.EncodeToString([]byte(`{"sub":"user-1"}`))
	token := "aaa." + payload + ".ccc"

	if err := Inspect(token, time.Now()); err != nil {
		t.Fatalf("Inspect() = %v, want nil", err)
	}
}

func TestSubject(t *testing.T) {
	if got := Subject(MakeToken(t, map[string]any{"sub": "user-42"})); got != "user-42" {
		t.Fatalf("Subject() = %q, want %q", got, "user-42")
	}
	if got := Subject("abc"); got != "" {
		t.Fatalf("Subject(malformed) = %q, want empty", got)
	}
	if got := Subject(MakeToken(t, map[string]any{"exp": 123})); got != "" {
		t.Fatalf("Subject(no sub) = %q, want empty", got)
	}
}
