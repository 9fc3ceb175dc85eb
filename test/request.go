package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"volunet-backend/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 直接调用 handler 并解析统一响应体
// target 可携带查询参数，params 为路径参数
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, method, target string, request any, params ...gin.Param) (resp response.ResponseBody) {
	w := DoRawRequest(t, handlerFunc, method, target, request, params...)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoRawRequest 同 DoRequest，但返回原始 recorder，用于非 JSON 响应
func DoRawRequest(t *testing.T, handlerFunc gin.HandlerFunc, method, target string, request any, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body io.Reader
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	}

	c.Request = httptest.NewRequest(method, target, body)
	if request != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Params = append(c.Params, params...)

	handlerFunc(c)
	return w
}

// Param 构造路径参数
func Param(key, value string) gin.Param {
	return gin.Param{Key: key, Value: value}
}
