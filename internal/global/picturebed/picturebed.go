package picturebed

import (
	"context"
	"fmt"

	appconfig "volunet-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PictureBed 对象存储图床，用于活动地点图片与用户头像的直传
type PictureBed struct {
	Endpoint     string
	BaseURL      string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool

	s3Client *s3.Client
}

var instance *PictureBed

// Get 获取全局图床实例
func Get() *PictureBed {
	if instance == nil {
		cfg := appconfig.Get().S3
		instance = &PictureBed{
			Endpoint:     cfg.Endpoint,
			BaseURL:      cfg.BaseURL,
			Bucket:       cfg.Bucket,
			Region:       cfg.Region,
			Prefix:       cfg.Prefix,
			UsePathStyle: cfg.UsePathStyle,
		}
	}
	return instance
}

// InitS3 初始化 S3 客户端，支持 MinIO 等自定义 endpoint
func (pb *PictureBed) InitS3(ctx context.Context) error {
	s3cfg := appconfig.Get().S3

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(pb.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKey, s3cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	pb.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if pb.Endpoint != "" {
			o.BaseEndpoint = aws.String(pb.Endpoint)
		}
		o.UsePathStyle = pb.UsePathStyle
	})

	return nil
}
