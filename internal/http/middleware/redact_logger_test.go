package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedactingLogger_ScrubsQueryAndHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{MaskHeaders: []string{"X-Api-Key"}}))
	r.GET("/contact", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet,
		"/contact?email=maria@example.com&phone=11999998888&id=123e4567-e89b-12d3-a456-426614174000", nil)
	req.Header.Set("Authorization", "Bearer super-secret")
	req.Header.Set("Cookie", "gesol_session=tok123")
	req.Header.Set("X-Api-Key", "key-456")
	req.Header.Set("User-Agent", "tester maria@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()

	// Raw PII must never appear
	for _, leak := range []string{
		"maria@example.com",
		"11999998888",
		"123e4567-e89b-12d3-a456-426614174000",
		"super-secret",
		"tok123",
		"key-456",
	} {
		if strings.Contains(out, leak) {
			t.Fatalf("log leaked %q:\n%s", leak, out)
		}
	}

	// Markers appear instead
	for _, marker := range []string{"[REDACTED:email]", "[REDACTED:phone]", "[REDACTED:id]", "[REDACTED]"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("expected marker %q in log:\n%s", marker, out)
		}
	}
}

func TestRedactingLogger_UUIDBeforePhone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	// A UUID contains digit runs that the loose phone pattern would eat; the
	// id marker must win.
	req := httptest.NewRequest(http.MethodGet, "/x?ref=550e8400-e29b-41d4-a716-446655440000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, "[REDACTED:id]") {
		t.Fatalf("expected id marker, got:\n%s", out)
	}
	if strings.Contains(out, "550e8400") {
		t.Fatalf("uuid fragment leaked:\n%s", out)
	}
}

func TestRedactingLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/bad", "/boom"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	}

	out := buf.String()
	for _, lvl := range []string{`"level":"info"`, `"level":"warn"`, `"level":"error"`} {
		if !strings.Contains(out, lvl) {
			t.Fatalf("expected %s in logs:\n%s", lvl, out)
		}
	}
}

func TestRedactingLogger_PathFallbackOn404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if !strings.Contains(buf.String(), `"path":"/nowhere"`) {
		t.Fatalf("expected raw path fallback, got:\n%s", buf.String())
	}
}
