package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Go-Storefront/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrStorageDisabled = errors.New("media storage is not configured")

type (
	AwsS3 interface {
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
		Enabled() bool
	}

	objectDeleter interface {
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client objectDeleter
		bucket string
		region string
	}
)

// NewAwsS3 builds the media store from config. Missing bucket settings give a disabled store.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" || region == "" {
		return &awsS3{}
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if ak, sk := utils.GetConfig("AWS_ACCESS_KEY"), utils.GetConfig("AWS_SECRET_KEY"); ak != "" && sk != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(ak, sk, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		zap.S().Errorf("failed to load aws config, media storage disabled: %v", err)
		return &awsS3{}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (s *awsS3) Enabled() bool {
	return s.client != nil
}

func (s *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	if !s.Enabled() {
		return ErrStorageDisabled
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	if !s.Enabled() || objectKey == "" {
		return ""
	}
	return s.baseURL() + strings.TrimPrefix(objectKey, "/")
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	if !s.Enabled() || !strings.HasPrefix(link, s.baseURL()) {
		return ""
	}
	return strings.TrimPrefix(link, s.baseURL())
}
