package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"midas_family_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

func newAuthEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15)

	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		id, ok := CallerUserId(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthValidToken(t *testing.T) {
	r := newAuthEngine(t)
	token, err := jwt.GenerateAccessToken(8)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := doRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := newAuthEngine(t)
	w := doRequest(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := newAuthEngine(t)
	for _, header := range []string{"Token abc", "Bearer", "bare-token"} {
		w := doRequest(t, r, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestJWTAuthBadSignature(t *testing.T) {
	r := newAuthEngine(t)

	claims := jwtlib.RegisteredClaims{
		Subject:   "8",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	w := doRequest(t, r, "Bearer "+forged)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	r := newAuthEngine(t)

	claims := jwtlib.RegisteredClaims{
		Subject:   "8",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	w := doRequest(t, r, "Bearer "+expired)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

// tokens minted by the user service carry only the subject claim; the
// user id is decoded from it.
func TestJWTAuthSubjectOnlyToken(t *testing.T) {
	r := newAuthEngine(t)

	claims := jwtlib.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"user_id":42}` {
		t.Errorf("body = %s, want user_id 42", body)
	}
}
