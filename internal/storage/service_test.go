package storage

import (
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
)

type fakeUploader struct {
	input *s3manager.UploadInput
	body  []byte
	err   error
}

func (f *fakeUploader) Upload(input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.input = input
	f.body, _ = io.ReadAll(input.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3manager.UploadOutput{Location: "https://s3.amazonaws.com/" + aws.StringValue(input.Bucket) + "/" + aws.StringValue(input.Key)}, nil
}

func TestArchiveFailedEvent(t *testing.T) {
	t.Parallel()

	t.Run("Should upload the payload under the failed events prefix", func(t *testing.T) {
		t.Parallel()

		up := &fakeUploader{}
		archive := &S3EventArchive{bucket: "lineblocs-billing", uploader: up}

		location, err := archive.ArchiveFailedEvent("evt_123", []byte(`{"id":"evt_123"}`))
		assert.NoError(t, err)
		assert.Equal(t, "https://s3.amazonaws.com/lineblocs-billing/billing-events/failed/evt_123.json", location)
		assert.Equal(t, "billing-events/failed/evt_123.json", aws.StringValue(up.input.Key))
		assert.Equal(t, `{"id":"evt_123"}`, string(up.body))
	})

	t.Run("Should return upload errors", func(t *testing.T) {
		t.Parallel()

		archive := &S3EventArchive{bucket: "lineblocs-billing", uploader: &fakeUploader{err: errors.New("denied")}}

		_, err := archive.ArchiveFailedEvent("evt_123", []byte(`{}`))
		assert.Error(t, err)
	})
}
