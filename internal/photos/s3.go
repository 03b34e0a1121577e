package photos

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	"github.com/easel-app/easel/internal/logging"
)

// S3Config holds the settings for an object-storage photo backend. Endpoint
// is optional and overrides the AWS default for MinIO-style deployments.
type S3Config struct {
	Region    string
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Store keeps assets in an S3 bucket, for installs that back photos up off
// the device. Asset paths are of the form s3://<bucket>/<key>.
type S3Store struct {
	client *s3.Client
	bucket string
	src    afero.Fs
	log    logging.Logger
}

// NewS3Client builds an S3 client from static credentials, honoring a custom
// base endpoint when one is configured.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// NewS3Store returns a store writing to bucket. Source images are still read
// from the local filesystem src before upload.
func NewS3Store(client *s3.Client, bucket string, src afero.Fs, log logging.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, src: src, log: log}
}

func (s *S3Store) Import(ctx context.Context, srcPath string, kind Kind) (string, error) {
	name, err := newFileName(kind, srcPath)
	if err != nil {
		return "", err
	}

	f, err := s.src.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("upload asset %s: %w", name, err)
	}

	path := fmt.Sprintf("s3://%s/%s", s.bucket, name)
	s.log.Debug(ctx, "photo uploaded", "src", srcPath, "path", path)
	return path, nil
}

func (s *S3Store) Delete(ctx context.Context, path string) error {
	bucket, key, err := parseS3Path(path)
	if err != nil {
		return err
	}

	// S3 delete is idempotent: removing an absent key succeeds.
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete asset %s: %w", path, err)
	}
	return nil
}

func parseS3Path(path string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 asset path: %s", path)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 asset path: %s", path)
	}
	return bucket, key, nil
}
