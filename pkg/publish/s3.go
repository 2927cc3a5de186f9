package publish

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// PutObjectAPI is the part of *s3.Client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ PutObjectAPI = (*s3.Client)(nil)

// S3Publisher uploads rendered documents to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := publish.NewS3Publisher(s3.NewFromConfig(cfg), "my-site", "pages/")
//	uri, err := pub.Publish(ctx, "index.html", html)
type S3Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	contentType  string
	cacheControl string
	now          func() time.Time
}

// NewS3Publisher creates a publisher for bucket. prefix is prepended to
// every key as is, so it usually ends in "/".
func NewS3Publisher(client PutObjectAPI, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client:      client,
		bucket:      bucket,
		prefix:      prefix,
		contentType: "text/html; charset=utf-8",
		now:         time.Now,
	}
}

// WithContentType sets the Content-Type of uploaded objects.
func (p *S3Publisher) WithContentType(ct string) *S3Publisher {
	if ct != "" {
		p.contentType = ct
	}
	return p
}

// WithCacheControl sets the Cache-Control of uploaded objects.
func (p *S3Publisher) WithCacheControl(cc string) *S3Publisher {
	p.cacheControl = cc
	return p
}

// Publish uploads body to prefix+key and returns its s3:// URI.
func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte) (string, error) {
	if p.bucket == "" {
		return "", errors.New("E001").WithDetail("Publish: `bucket` should not be empty").
			WithSuggestion("Set publish.bucket in hyperflex.json or pass --bucket")
	}
	if err := validateKey(key); err != nil {
		return "", err
	}
	fullKey := p.prefix + key

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(p.contentType),
		Metadata: map[string]string{
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", errors.New("E030").
			WithDetailf("s3://%s/%s: %v", p.bucket, fullKey, err).
			Wrap(err)
	}
	return "s3://" + p.bucket + "/" + fullKey, nil
}
