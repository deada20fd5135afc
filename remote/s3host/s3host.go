// Package s3host implements the assetsync release host capability on top of
// an Amazon S3 bucket. A release is modeled as a key prefix: syncing against
// target "v1.4.0" stores each asset at "<prefix>/v1.4.0/<name>".
//
// The asset ID handed back to the engine is the object key, which is what
// DeleteAsset expects to receive.
package s3host

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	syncerrors "github.com/releasekit/assetsync/errors"
	"github.com/releasekit/assetsync/synctypes"
)

// labelMetadataKey is the object metadata key carrying the asset label.
const labelMetadataKey = "assetsync-label"

// S3API defines the S3 operations used by this host.
// This interface allows for mocking in tests.
type S3API interface {
	// PutObject uploads an object to S3
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	// DeleteObject deletes an object from S3
	DeleteObject(
		ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)

	// ListObjectsV2 lists objects in an S3 bucket
	ListObjectsV2(
		ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
}

// Host is a ReleaseHost backed by an S3 bucket.
type Host struct {
	client S3API
	bucket string
	prefix string
}

var _ synctypes.ReleaseHost = (*Host)(nil)

// New creates a new S3-backed release host using the default AWS credential
// chain.
//
// Example:
//
//	host, err := s3host.New(ctx, "releases-bucket", "project-x")
func New(ctx context.Context, bucket, prefix string, optFns ...func(*s3.Options)) (*Host, error) {
	if bucket == "" {
		return nil, syncerrors.NewError("s3host.new", syncerrors.ErrInvalidInput)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, syncerrors.NewError("s3host.new", err)
	}

	return &Host{
		client: s3.NewFromConfig(cfg, optFns...),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// NewWithClient creates a host with a custom S3 client implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(client S3API, bucket, prefix string) *Host {
	return &Host{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// UploadAsset implements synctypes.ReleaseHost.
func (h *Host) UploadAsset(
	ctx context.Context,
	target string,
	req synctypes.UploadRequest,
) (*synctypes.ReleaseAsset, error) {
	key := h.key(target, req.Name)
	size := int64(len(req.Body))

	input := &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(req.Body),
		ContentType:   aws.String(req.ContentType),
		ContentLength: aws.Int64(size),
	}
	if req.Label != "" {
		input.Metadata = map[string]string{labelMetadataKey: req.Label}
	}

	if _, err := h.client.PutObject(ctx, input); err != nil {
		return nil, syncerrors.NewAssetError("upload", req.Name, err)
	}

	now := time.Now().UTC()
	return &synctypes.ReleaseAsset{
		ID:          key,
		Name:        req.Name,
		Label:       req.Label,
		State:       "uploaded",
		ContentType: req.ContentType,
		Size:        size,
		CreatedAt:   now,
		UpdatedAt:   now,
		URL:         fmt.Sprintf("s3://%s/%s", h.bucket, key),
		DownloadURL: fmt.Sprintf("https://%s.s3.amazonaws.com/%s", h.bucket, key),
	}, nil
}

// DeleteAsset implements synctypes.ReleaseHost. The id is the object key
// that UploadAsset or ListAssets returned.
func (h *Host) DeleteAsset(ctx context.Context, target string, id string) error {
	if _, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(id),
	}); err != nil {
		return syncerrors.NewAssetError("delete", id, err)
	}
	return nil
}

// ListAssets returns the assets currently stored under the target's prefix,
// suitable as the existing-assets snapshot for a sync pass. Labels are not
// recoverable from a bucket listing and are left empty.
func (h *Host) ListAssets(ctx context.Context, target string) ([]synctypes.ReleaseAsset, error) {
	releasePrefix := h.key(target, "") + "/"

	var assets []synctypes.ReleaseAsset
	var continuationToken *string

	for {
		output, err := h.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(h.bucket),
			Prefix:            aws.String(releasePrefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, syncerrors.NewError("list", err)
		}

		for _, obj := range output.Contents {
			key := aws.ToString(obj.Key)
			asset := synctypes.ReleaseAsset{
				ID:          key,
				Name:        path.Base(key),
				State:       "uploaded",
				Size:        aws.ToInt64(obj.Size),
				URL:         fmt.Sprintf("s3://%s/%s", h.bucket, key),
				DownloadURL: fmt.Sprintf("https://%s.s3.amazonaws.com/%s", h.bucket, key),
			}
			if obj.LastModified != nil {
				asset.CreatedAt = *obj.LastModified
				asset.UpdatedAt = *obj.LastModified
			}
			assets = append(assets, asset)
		}

		if !aws.ToBool(output.IsTruncated) {
			break
		}
		continuationToken = output.NextContinuationToken
	}

	return assets, nil
}

// key builds the object key for an asset on the given release.
func (h *Host) key(target, name string) string {
	parts := make([]string, 0, 3)
	if h.prefix != "" {
		parts = append(parts, h.prefix)
	}
	parts = append(parts, target)
	if name != "" {
		parts = append(parts, name)
	}
	return path.Join(parts...)
}
