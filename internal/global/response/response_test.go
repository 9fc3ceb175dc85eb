package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunet-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestFailStatusFromCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrCapacityFull, http.StatusConflict},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		c, w := newTestContext(t)
		Fail(c, tc.err)
		require.Equal(t, tc.status, w.Code, "code %d", tc.err.Code)

		var body ResponseBody
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Equal(t, tc.err.Code, body.Code)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := newTestContext(t)
	Success(c, gin.H{"message": "service up"})

	require.Equal(t, http.StatusOK, w.Code)

	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, int32(200), body.Code)
	data := body.Data.(map[string]any)
	require.Equal(t, "service up", data["message"])
}

func TestErrorIsMatchesByCode(t *testing.T) {
	require.ErrorIs(t, ErrNotFound.WithTips("活动不存在"), ErrNotFound)
	require.NotErrorIs(t, ErrNotFound, ErrDatabase)
}
