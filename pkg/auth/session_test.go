package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/yaraku/he-tool/pkg/auth"
	"github.com/yaraku/he-tool/pkg/utils/try"
)

func TestTokenPolicy(t *testing.T) {

	t.Run("a token it issued verifies to the same user", func(t *testing.T) {
		policy := auth.NewTokenPolicy([]byte("test-secret"))

		token, issuedExp, err := policy.Issue(42, auth.DefaultLifetime)
		if err != nil {
			t.Fatal(err)
		}

		userId, expiresAt, err := policy.Verify(token)
		if err != nil {
			t.Fatal(err)
		}
		if userId != 42 {
			t.Errorf("unmatch user id: %d, expected 42", userId)
		}
		if d := expiresAt.Sub(issuedExp); d < -time.Second || time.Second < d {
			t.Errorf("unmatch expiry: %s vs %s", expiresAt, issuedExp)
		}
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		policy := auth.NewTokenPolicy([]byte("test-secret"))

		token, _, err := policy.Issue(42, -time.Minute)
		if err != nil {
			t.Fatal(err)
		}

		if _, _, err := policy.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		issuer := auth.NewTokenPolicy([]byte("their-secret"))
		verifier := auth.NewTokenPolicy([]byte("our-secret"))

		token, _, err := issuer.Issue(42, auth.DefaultLifetime)
		if err != nil {
			t.Fatal(err)
		}

		if _, _, err := verifier.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		policy := auth.NewTokenPolicy([]byte("test-secret"))

		if _, _, err := policy.Verify("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("each token carries a distinct id", func(t *testing.T) {
		policy := auth.NewTokenPolicy([]byte("test-secret"))

		a, _, err := policy.Issue(42, auth.DefaultLifetime)
		if err != nil {
			t.Fatal(err)
		}
		b, _, err := policy.Issue(42, auth.DefaultLifetime)
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Error("two issued tokens are identical")
		}
	})
}

func TestPassword(t *testing.T) {

	t.Run("a hashed password verifies against the original", func(t *testing.T) {
		hash := try.To(auth.HashPassword("hunter2")).OrFatal(t)

		if !auth.VerifyPassword(hash, "hunter2") {
			t.Error("the original password does not verify")
		}
		if auth.VerifyPassword(hash, "hunter3") {
			t.Error("a wrong password verifies")
		}
	})

	t.Run("hashing is salted", func(t *testing.T) {
		a := try.To(auth.HashPassword("hunter2")).OrFatal(t)
		b := try.To(auth.HashPassword("hunter2")).OrFatal(t)

		if a == b {
			t.Error("two hashes of the same password are identical")
		}
	})
}
