package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Upload key prefixes for the two image kinds a profile references
const (
	AvatarPrefix    = "avatars"
	StudentIDPrefix = "student-ids"
)

// S3Service issues presigned URLs for profile image uploads and reads
type S3Service struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewS3Service() *S3Service {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Service{
		Presigner: s3.NewPresignClient(client),
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
	}
}

// GenerateUploadURL generates a presigned URL for uploading a file
func (s *S3Service) GenerateUploadURL(ctx context.Context, prefix, fileName, fileType string) (string, string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, time.Now().Format("20060102150405"), fileName)
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presignedURL, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a file
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	presignedURL, err := s.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
