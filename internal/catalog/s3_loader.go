package catalog

import (
	"context"
	"fmt"
	"strings"

	"ethnic-elite/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading the products JSON object from
// AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "catalog-s3-loader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("key", key).
		Msg("S3 catalogue loader initialised")

	return &s3Loader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

// Load reads and validates the products object from S3.
func (l *s3Loader) Load(ctx context.Context) ([]model.Product, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", l.key).
		Msg("loading product catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", l.key).
			Msg("failed to get catalogue object from S3")
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", l.bucket, l.key, err)
	}
	defer result.Body.Close()

	products, err := decodeProducts(result.Body, strings.HasSuffix(l.key, ".gz"))
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", l.key).
			Msg("failed to decode catalogue object")
		return nil, fmt.Errorf("failed to decode s3://%s/%s: %w", l.bucket, l.key, err)
	}

	if err := validateProducts(products); err != nil {
		return nil, fmt.Errorf("catalogue object s3://%s/%s: %w", l.bucket, l.key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", l.key).
		Int("products", len(products)).
		Msg("product catalogue loaded from S3")

	return products, nil
}
