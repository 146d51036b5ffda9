package utils

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const imagePrefix = "img/"

// ImageStore хранит фотографии кораблей в бакете MinIO
type ImageStore struct {
	client *minio.Client
	bucket string
}

func NewImageStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &ImageStore{client: client, bucket: bucket}, nil
}

// EnsureBucket создаёт бакет, если его ещё нет
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	logrus.Infof("creating bucket %s", s.bucket)
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *ImageStore) PutImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, imagePrefix+name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *ImageStore) RemoveImage(ctx context.Context, name string) error {
	return s.client.RemoveObject(ctx, s.bucket, imagePrefix+name, minio.RemoveObjectOptions{})
}
