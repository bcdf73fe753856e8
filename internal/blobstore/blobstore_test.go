package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string]Object
	putErr  error
	getErr  error
}

func newMemStore() *memStore { return &memStore{objects: map[string]Object{}} }

func (m *memStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	return nil
}

func (m *memStore) Get(_ context.Context, key string) (*Object, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &obj, nil
}

var png = []byte("\x89PNG\r\n\x1a\nfake")

func TestUploadToPrimaryStore(t *testing.T) {
	primary := newMemStore()
	images := NewImages(primary, NewDBStore(dbtest.Open(t)))
	images.now = func() time.Time { return time.UnixMilli(1700000000123) }
	ctx := context.Background()

	url, err := images.Upload(ctx, "Photo.PNG", "image/png", png)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/api/images/1700000000123-[a-z0-9]{6}\.png$`), url)
	assert.Len(t, primary.objects, 1)

	obj, err := images.Open(ctx, strings.TrimPrefix(url, imageURLPrefix))
	require.NoError(t, err)
	assert.Equal(t, png, obj.Data)
	assert.Equal(t, "image/png", obj.ContentType)
}

func TestUploadFallsBackToDatabase(t *testing.T) {
	primary := newMemStore()
	primary.putErr = errors.New("bucket unavailable")
	primary.getErr = errors.New("bucket unavailable")
	images := NewImages(primary, NewDBStore(dbtest.Open(t)))
	ctx := context.Background()

	url, err := images.Upload(ctx, "noext", "image/jpeg", png)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	obj, err := images.Open(ctx, strings.TrimPrefix(url, imageURLPrefix))
	require.NoError(t, err)
	assert.Equal(t, png, obj.Data)
	assert.Equal(t, "image/png", obj.ContentType, "sniffed type wins over the declared one")
}

func TestUploadValidation(t *testing.T) {
	images := NewImages(nil, NewDBStore(dbtest.Open(t)))
	ctx := context.Background()

	_, err := images.Upload(ctx, "a.txt", "text/plain", []byte("hello"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = images.Upload(ctx, "fake.png", "image/png", []byte("<html><script>alert(1)</script></html>"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = images.Upload(ctx, "a.png", "image/png", nil)
	assert.ErrorIs(t, err, ErrNoImage)

	big := append(append([]byte(nil), png...), make([]byte, MaxDatabaseBytes)...)
	_, err = images.Upload(ctx, "big.png", "image/png", big)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, int64(MaxDatabaseBytes), images.MaxUploadBytes())
	assert.Equal(t, int64(MaxObjectStoreBytes), NewImages(newMemStore(), nil).MaxUploadBytes())
}

func TestOpenMissingAndUnsafeNames(t *testing.T) {
	images := NewImages(newMemStore(), NewDBStore(dbtest.Open(t)))
	ctx := context.Background()

	for _, name := range []string{"missing.png", "../etc/passwd", "a/b.png", ".."} {
		_, err := images.Open(ctx, name)
		assert.ErrorIs(t, err, ErrImageMissing, name)
	}
}

type fakeObjectAPI struct {
	putInput *s3.PutObjectInput
	putBody  []byte
	getOut   *s3.GetObjectOutput
	getErr   error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = in
	body, _ := io.ReadAll(in.Body)
	f.putBody = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func TestNewS3StoreAppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "auto" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("static credentials not applied")
		}
		return aws.Config{}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &fakeObjectAPI{}
	}

	store, err := NewS3Store(context.Background(), config.S3Config{
		Endpoint:     "https://account.r2.cloudflarestorage.com",
		Region:       "auto",
		Bucket:       "images",
		AccessKey:    "key",
		SecretKey:    "secret",
		UsePathStyle: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "images", store.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "https://account.r2.cloudflarestorage.com", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	_, err = NewS3Store(context.Background(), config.S3Config{})
	assert.Error(t, err)
}

func TestS3StorePutAndGet(t *testing.T) {
	api := &fakeObjectAPI{getOut: &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(png)),
		ContentType: aws.String("image/png"),
	}}
	store := &S3Store{client: api, bucket: "images"}
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "images/a.png", png, "image/png"))
	assert.Equal(t, "images", aws.ToString(api.putInput.Bucket))
	assert.Equal(t, "images/a.png", aws.ToString(api.putInput.Key))
	assert.Equal(t, "image/png", aws.ToString(api.putInput.ContentType))
	assert.Equal(t, png, api.putBody)

	obj, err := store.Get(ctx, "images/a.png")
	require.NoError(t, err)
	assert.Equal(t, png, obj.Data)
	assert.Equal(t, "image/png", obj.ContentType)

	api.getErr = &types.NoSuchKey{}
	_, err = store.Get(ctx, "images/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	api.getErr = errors.New("network down")
	_, err = store.Get(ctx, "images/a.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDBStoreRoundTrip(t *testing.T) {
	store := NewDBStore(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "images/x.gif", []byte("GIF89a"), "image/gif"))
	obj, err := store.Get(ctx, "x.gif")
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF89a"), obj.Data)
	assert.Equal(t, "image/gif", obj.ContentType)

	_, err = store.Get(ctx, "images/none.gif")
	assert.ErrorIs(t, err, ErrNotFound)
}
