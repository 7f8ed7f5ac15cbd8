package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secret = "test-secret"

func TestMakeAndParse(t *testing.T) {
	tok, err := MakeToken("recepcion", secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Subject != "recepcion" {
		t.Errorf("subject = %q", c.Subject)
	}
}

func TestParseRejects(t *testing.T) {
	good, _ := MakeToken("recepcion", secret, time.Hour)
	expired, _ := MakeToken("recepcion", secret, -time.Minute)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "other"},
		{"expired", expired, secret},
		{"garbage", "not.a.jwt", secret},
		{"alg none", none, secret},
		{"empty", "", secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); err == nil {
				t.Error("token accepted")
			}
		})
	}
}
