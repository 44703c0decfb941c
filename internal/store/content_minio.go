// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioContentStorage keeps document bodies in an S3 compatible bucket.
type minioContentStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioContentStorage connects to the object storage and makes sure the
// bucket exists.
func NewMinioContentStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ContentStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioContentStorage").Msg("error creating minio client")
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewMinioContentStorage").Msg("error checking bucket")
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Err(err).Str("func", "NewMinioContentStorage").Msg("error creating bucket")
			return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created bucket")
	}

	return &minioContentStorage{client: client, bucket: cfg.Bucket, logger: log}, nil
}

func (s *minioContentStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioContentStorage.Put").Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return nil
}

func (s *minioContentStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioContentStorage.Get").Msg("error getting object")
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	// GetObject is lazy; Stat surfaces a missing key.
	if _, err = obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrContentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*minioContentStorage.Get").Msg("error reading object")
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return obj, nil
}

func (s *minioContentStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioContentStorage.Delete").Msg("error removing object")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return nil
}
