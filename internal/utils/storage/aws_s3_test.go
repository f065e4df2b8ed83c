package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	deleted []string
}

func (f *fakeDeleter) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestPublicLinkRoundTrip(t *testing.T) {
	store := &awsS3{client: &fakeDeleter{}, bucket: "shop-media", region: "ap-southeast-1"}

	link := store.GetPublicLinkKey("products/coffee.png")
	assert.Equal(t, "https://shop-media.s3.ap-southeast-1.amazonaws.com/products/coffee.png", link)
	assert.Equal(t, "products/coffee.png", store.GetObjectKeyFromLink(link))
	assert.Empty(t, store.GetObjectKeyFromLink("https://cdn.example.com/products/coffee.png"))
}

func TestDeleteFile(t *testing.T) {
	deleter := &fakeDeleter{}
	store := &awsS3{client: deleter, bucket: "shop-media", region: "ap-southeast-1"}

	require.NoError(t, store.DeleteFile(context.Background(), "products/coffee.png"))
	assert.Equal(t, []string{"products/coffee.png"}, deleter.deleted)
}

func TestDisabledStore(t *testing.T) {
	store := &awsS3{}

	assert.False(t, store.Enabled())
	assert.ErrorIs(t, store.DeleteFile(context.Background(), "x"), ErrStorageDisabled)
	assert.Empty(t, store.GetPublicLinkKey("x"))
}
