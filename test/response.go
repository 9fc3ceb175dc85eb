package test

import (
	"testing"

	"volunet-backend/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应携带预期的错误码
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

// NoError 断言响应成功
func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}

// Data 取出响应 data 并断言其为对象
func Data(t *testing.T, resp response.ResponseBody) map[string]any {
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "响应 data 不是对象: %v", resp.Data)
	return data
}

// DataSlice 取出响应 data 并断言其为数组
func DataSlice(t *testing.T, resp response.ResponseBody) []any {
	data, ok := resp.Data.([]any)
	require.True(t, ok, "响应 data 不是数组: %v", resp.Data)
	return data
}
