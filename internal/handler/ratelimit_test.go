package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSolveLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		limit    float64
		burst    int
		requests int
		expected []int
	}{
		{
			name:     "disabled",
			limit:    0,
			requests: 3,
			expected: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:     "burst exhausted",
			limit:    0.001,
			burst:    2,
			requests: 3,
			expected: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/tour", NewSolveLimiter(tt.limit, tt.burst).JSON(), func(c *gin.Context) { c.Status(http.StatusOK) })

			for i := 0; i < tt.requests; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tour", nil))
				assert.Equal(t, tt.expected[i], w.Code, "request %d", i)
			}
		})
	}
}

func TestSolveLimiter_PageRendersFailureBanner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.GET("/", NewSolveLimiter(0.001, 1).Page(), func(c *gin.Context) { c.String(http.StatusOK, "solved") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Vehicle Routing Problem Solver")
	assert.Contains(t, w.Body.String(), "Optimization failed.")
}
