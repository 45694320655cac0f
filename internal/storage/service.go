package storage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

const failedEventPrefix = "billing-events/failed/"

// EventArchive keeps payloads of events that failed to reconcile so they can
// be replayed by hand.
type EventArchive interface {
	ArchiveFailedEvent(eventID string, payload []byte) (string, error)
}

type uploader interface {
	Upload(input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

type S3EventArchive struct {
	bucket   string
	uploader uploader
}

func NewS3EventArchive(settings *models.Settings) (*S3EventArchive, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(settings.GetAWSRegion()),
		Credentials: credentials.NewStaticCredentials(
			settings.Credentials["aws_access_key_id"],
			settings.Credentials["aws_secret_access_key"], ""),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create aws session")
	}
	return &S3EventArchive{
		bucket:   settings.GetS3Bucket(),
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (a *S3EventArchive) ArchiveFailedEvent(eventID string, payload []byte) (string, error) {
	key := fmt.Sprintf("%s%s.json", failedEventPrefix, eventID)
	result, err := a.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not archive event %s", eventID)
	}
	return result.Location, nil
}
