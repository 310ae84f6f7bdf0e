package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StructureReport describes the bucket layout snapshots rely on.
type StructureReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing needs fixing.
func (r *StructureReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

// CheckStructure reports whether the bucket and every required folder exist.
// A missing bucket implies every folder is missing.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) (*StructureReport, error) {
	report := &StructureReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, folders...)
		return report, nil
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:  folderKey(folder),
			MaxKeys: 1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}

	return report, nil
}

// FixStructure creates the bucket if needed and a marker object for every
// missing folder.
func FixStructure(ctx context.Context, client storage.Client, report *StructureReport, logger *zap.Logger) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.Missing {
		_, err := client.PutObject(ctx, report.Bucket, folderKey(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderKey(folder string) string {
	folder = strings.Trim(folder, "/")
	return folder + "/"
}
