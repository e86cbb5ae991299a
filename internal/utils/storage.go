package utils

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/ahmadqo/school-attendance/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type StorageService struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

type UploadResult struct {
	FileURL  string
	FileName string
	FileSize int64
}

// Tipe file yang boleh diupload sebagai foto siswa
var AllowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

const MaxPhotoSize = 5 * 1024 * 1024 // 5 MB

func NewStorageService(ctx context.Context, cfg *config.MinIOConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &StorageService{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

// UploadFile upload file ke MinIO dan kembalikan URL-nya
func (s *StorageService) UploadFile(ctx context.Context, folder string, data []byte, contentType string) (*UploadResult, error) {
	ext, ok := AllowedPhotoTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("tipe file tidak diizinkan: %s", contentType)
	}
	if len(data) > MaxPhotoSize {
		return nil, fmt.Errorf("ukuran file melebihi batas maksimal 5MB")
	}

	objectName := fmt.Sprintf("%s/%s-%s%s",
		folder,
		time.Now().Format("20060102"),
		uuid.New().String()[:8],
		ext,
	)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal upload file: %w", err)
	}

	return &UploadResult{
		FileURL:  fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName),
		FileName: path.Base(objectName),
		FileSize: int64(len(data)),
	}, nil
}

// DeleteFile hapus file dari MinIO berdasarkan URL hasil UploadFile
func (s *StorageService) DeleteFile(ctx context.Context, fileURL string) error {
	prefix := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	objectName := strings.TrimPrefix(fileURL, prefix)

	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
