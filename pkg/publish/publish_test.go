package publish

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/hyperflex/internal/errors"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3PublisherPublish(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "site", "pages/").
		WithCacheControl("max-age=60")
	pub.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	uri, err := pub.Publish(context.Background(), "index.html", []byte("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if uri != "s3://site/pages/index.html" {
		t.Errorf("uri = %q", uri)
	}

	in := client.input
	if aws.ToString(in.Bucket) != "site" || aws.ToString(in.Key) != "pages/index.html" {
		t.Errorf("bucket/key = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", aws.ToString(in.ContentType))
	}
	if aws.ToString(in.CacheControl) != "max-age=60" {
		t.Errorf("CacheControl = %q", aws.ToString(in.CacheControl))
	}
	if aws.ToInt64(in.ContentLength) != 9 || string(client.body) != "<p>hi</p>" {
		t.Errorf("body = %q (%d)", client.body, aws.ToInt64(in.ContentLength))
	}
	if in.Metadata["publish-time"] != "2024-05-01T12:00:00Z" {
		t.Errorf("Metadata = %v", in.Metadata)
	}
}

func TestS3PublisherContentType(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "b", "").WithContentType("text/plain").WithContentType("")
	if _, err := pub.Publish(context.Background(), "a.txt", nil); err != nil {
		t.Fatal(err)
	}
	if aws.ToString(client.input.ContentType) != "text/plain" {
		t.Errorf("ContentType = %q", aws.ToString(client.input.ContentType))
	}
	if client.input.CacheControl != nil {
		t.Error("CacheControl should be unset")
	}
}

func TestS3PublisherErrors(t *testing.T) {
	sdkErr := stderrors.New("access denied")

	tests := []struct {
		name   string
		bucket string
		key    string
		err    error
		code   string
	}{
		{"empty bucket", "", "a.html", nil, "E001"},
		{"empty key", "b", "", nil, "E001"},
		{"parent key", "b", "../a.html", nil, "E001"},
		{"sdk failure", "b", "a.html", sdkErr, "E030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeS3{err: tt.err}
			_, err := NewS3Publisher(client, tt.bucket, "").Publish(context.Background(), tt.key, []byte("x"))
			if errors.CodeOf(err) != tt.code {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
			if tt.err != nil && !stderrors.Is(err, tt.err) {
				t.Error("SDK error not wrapped")
			}
			if tt.code == "E001" && client.input != nil {
				t.Error("client called for invalid input")
			}
		})
	}
}

func TestDirPublisher(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	pub, err := NewDirPublisher(dir)
	if err != nil {
		t.Fatal(err)
	}

	path, err := pub.Publish(context.Background(), "docs/index.html", []byte("<h1>x</h1>"))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if path != filepath.Join(dir, "docs", "index.html") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<h1>x</h1>" {
		t.Errorf("file = %q, %v", data, err)
	}

	// Overwrite in place.
	if _, err := pub.Publish(context.Background(), "docs/index.html", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "v2" {
		t.Errorf("file = %q after overwrite", data)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "docs"))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestDirPublisherErrors(t *testing.T) {
	pub, err := NewDirPublisher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pub.Publish(context.Background(), "../x.html", nil); errors.CodeOf(err) != "E001" {
		t.Errorf("err = %v, want E001", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pub.Publish(ctx, "x.html", nil); !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

var (
	_ Publisher = (*S3Publisher)(nil)
	_ Publisher = (*DirPublisher)(nil)
)
