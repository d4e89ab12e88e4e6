package services

import (
	"context"
	"fmt"
	"time"

	sc "github.com/expenso-app/expenso/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// presignValidity bounds how long a presigned receipt URL stays usable.
const presignValidity = 15 * time.Minute

// ReceiptService hands out short-lived presigned URLs so clients can upload
// receipt images straight to object storage and read them back. The returned
// storage key goes into Expense.ReceiptURL.
type ReceiptService struct {
	config *sc.Config
}

// NewReceiptService constructs a ReceiptService from server config.
func NewReceiptService(config *sc.Config) *ReceiptService {
	return &ReceiptService{config: config}
}

// ReceiptStorageKey returns a fresh, date-partitioned object key.
func ReceiptStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("receipts/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ReceiptService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetUploadURL returns a storage key and a presigned PUT URL for it.
func (s *ReceiptService) GetUploadURL(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := ReceiptStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetDownloadURL returns a presigned GET URL for an existing receipt key.
func (s *ReceiptService) GetDownloadURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
