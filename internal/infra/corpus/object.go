package corpus

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/vedic-weekly/internal/domain/verses"
)

// ObjectStoreConfig locates the corpus JSON in an S3-compatible bucket.
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Key       string
	Region    string
}

// LoadObjectStore fetches the corpus from S3-compatible storage (R2, MinIO,
// S3). Used when the corpus is maintained centrally rather than shipped
// with the binary.
func LoadObjectStore(ctx context.Context, cfg ObjectStoreConfig) ([]verses.VerseRecord, error) {
	endpoint := sanitizeEndpoint(cfg.Endpoint)
	useSSL := strings.HasPrefix(strings.ToLower(cfg.Endpoint), "https")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}

	obj, err := client.GetObject(ctx, cfg.Bucket, cfg.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch corpus object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read corpus object: %w", err)
	}
	return decode(data)
}

func sanitizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimRight(endpoint, "/")
}
