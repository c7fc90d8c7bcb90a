package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Set(consts.BaseURLKey, "http://blog.test")
	return c, w
}

func TestNewPageLinks(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		page     util.PageQuery
		total    int64
		wantNext string
		wantPrev string
	}{
		{"first page", "/api/posts", util.PageQuery{Limit: 10, Offset: 0}, 25, "http://blog.test/api/posts?limit=10&offset=10", ""},
		{"middle page", "/api/posts?limit=10&offset=10", util.PageQuery{Limit: 10, Offset: 10}, 25, "http://blog.test/api/posts?limit=10&offset=20", "http://blog.test/api/posts?limit=10"},
		{"last page", "/api/posts?offset=20", util.PageQuery{Limit: 10, Offset: 20}, 25, "", "http://blog.test/api/posts?limit=10&offset=10"},
		{"short offset clamps to zero", "/api/tags?offset=3&limit=10", util.PageQuery{Limit: 10, Offset: 3}, 5, "", "http://blog.test/api/tags?limit=10"},
		{"keeps other params", "/api/posts?q=go", util.PageQuery{Limit: 1, Offset: 0}, 2, "http://blog.test/api/posts?limit=1&offset=1&q=go", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.target)
			p := NewPage[int](c, tt.page, tt.total, nil)
			assert.Equal(t, tt.total, p.Count)
			assert.NotNil(t, p.Results)
			if tt.wantNext == "" {
				assert.Nil(t, p.Next)
			} else {
				require.NotNil(t, p.Next)
				assert.Equal(t, tt.wantNext, *p.Next)
			}
			if tt.wantPrev == "" {
				assert.Nil(t, p.Previous)
			} else {
				require.NotNil(t, p.Previous)
				assert.Equal(t, tt.wantPrev, *p.Previous)
			}
		})
	}
}

type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrNoComments, http.StatusNotFound},
		{service.ErrUnauthenticated, http.StatusForbidden},
		{service.UnauthorizedError, http.StatusForbidden},
		{service.ErrActionDuplicate, http.StatusConflict},
		{service.ErrParamInvalid, http.StatusBadRequest},
		{&json.SyntaxError{}, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		c, w := newContext("/api/x")
		Error(c, tt.err)
		assert.Equal(t, tt.wantStatus, w.Code, tt.err.Error())

		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.wantStatus, body.Status)
		assert.Nil(t, body.Data)
	}
}

func TestCreatedEnvelope(t *testing.T) {
	c, w := newContext("/api/posts")
	CreatedMsg(c, "Post created successfully", map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":1},"message":"Post created successfully","status":201}`, w.Body.String())
}
