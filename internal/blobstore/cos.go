package blobstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tencentyun/cos-go-sdk-v5"

	"blog-service/internal/logger"
)

// COSConfig holds Tencent Cloud Object Storage settings.
type COSConfig struct {
	BucketName string `yaml:"bucket_name"`
	AppID      string `yaml:"app_id"`
	Region     string `yaml:"region"`
	SecretID   string `yaml:"secret_id"`
	SecretKey  string `yaml:"secret_key"`
	// BaseURL overrides the public URL prefix, e.g. a CDN domain.
	BaseURL string `yaml:"base_url"`
}

// COSStore keeps blobs in a Tencent COS bucket.
type COSStore struct {
	client        *cos.Client
	publicBaseURL string
}

// NewCOSStore creates a COS-backed store.
func NewCOSStore(cfg COSConfig) (*COSStore, error) {
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		return nil, fmt.Errorf("cos config incomplete: bucket_name, app_id, region, secret_id and secret_key are required")
	}

	bucketURL := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, fmt.Errorf("parse bucket url %q: %w", bucketURL, err)
	}

	publicBase := bucketURL
	if cfg.BaseURL != "" {
		if _, err := url.Parse(cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("parse base url %q: %w", cfg.BaseURL, err)
		}
		publicBase = cfg.BaseURL
	}

	logger.Info("COS blob store initialized",
		slog.String("bucket", cfg.BucketName),
		slog.String("region", cfg.Region),
		slog.String("public_base_url", publicBase))

	return newCOSStore(u, publicBase, cfg.SecretID, cfg.SecretKey), nil
}

func newCOSStore(bucketURL *url.URL, publicBase, secretID, secretKey string) *COSStore {
	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  secretID,
			SecretKey: secretKey,
		},
	})
	return &COSStore{client: client, publicBaseURL: publicBase}
}

// Put uploads the content as an object.
func (s *COSStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}
	resp, err := s.client.Object.Put(ctx, key, r, opts)
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("put object %q: status %d: %s", key, resp.StatusCode, body)
	}
	return key, nil
}

// Delete removes the object. COS answers 204 for missing keys too.
func (s *COSStore) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	resp, err := s.client.Object.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete object %q: status %d: %s", key, resp.StatusCode, body)
	}
	return nil
}

// URLFor returns the public object URL.
func (s *COSStore) URLFor(key string) string {
	return joinURL(s.publicBaseURL, key)
}
