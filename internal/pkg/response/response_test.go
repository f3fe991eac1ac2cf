package response

import (
	"Commons/internal/api/dto"
	"Commons/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func render(t *testing.T, fn func(c *gin.Context)) dto.Response {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var resp dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", service.ErrPostNotFound, NotFound, service.ErrPostNotFound.Error()},
		{"wrapped store error", fmt.Errorf("%w: %w", service.ErrStoreUnavailable, errors.New("dial tcp: refused")), service.ServiceUnavailable, service.ErrStoreUnavailable.Error()},
		{"unknown", errors.New("driver exploded"), InternalServerError, service.UnExpectedError.Error()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := render(t, func(c *gin.Context) { Error(c, tc.err) })
			if resp.Code != tc.code || resp.Message != tc.msg {
				t.Errorf("got (%d, %q), want (%d, %q)", resp.Code, resp.Message, tc.code, tc.msg)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	resp := render(t, func(c *gin.Context) { Success(c, map[string]int{"n": 1}) })
	if resp.Code != Ok || resp.Message != "success" || resp.Data == nil {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestBindingErrorsAreBadRequest(t *testing.T) {
	_, parseErr := strconv.Atoi("abc")
	resp := render(t, func(c *gin.Context) { Error(c, parseErr) })
	if resp.Code != BadRequest || resp.Message != service.ErrParamInvalid.Error() {
		t.Errorf("got (%d, %q)", resp.Code, resp.Message)
	}
}
