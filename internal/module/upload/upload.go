package upload

import (
	"volunet-backend/internal/global/picturebed"
	"volunet-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

// PresignReq 定义预签名请求的查询参数结构体
type PresignReq struct {
	Filename    string `form:"filename" binding:"required"` // 原始文件名
	ContentType string `form:"contentType"`                 // 文件 MIME 类型
}

// Presign 生成 S3 预签名上传 URL，前端直传图片后将访问 URL 写入活动或用户
func Presign(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定预签名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	result, err := picturebed.Get().GeneratePresignedUploadURL(c.Request.Context(), picturebed.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		log.Error("生成预签名 URL 失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("生成预签名 URL 成功", "file_key", result.FileKey)

	response.Success(c, result)
}
