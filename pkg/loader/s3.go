package loader

import (
	"context"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/model"
)

// S3Config is the configuration for a S3-compatible storage provider
type S3Config struct {
	// S3 Bucket the data file is stored in
	Bucket string `toml:"bucket"`
	// Region of the S3 service
	Region string `toml:"region"`
	// EndpointURL is an HTTP endpoint of the S3 API
	EndpointURL string `toml:"endpoint_url"`
	// Prefix is a key prefix of the data file
	Prefix string `toml:"prefix"`
}

// S3 reads the data file from a S3-compatible bucket.
type S3 struct {
	api    s3iface.S3API
	bucket string
	prefix string
	name   string
}

func NewS3(c S3Config, name string) (*S3, error) {
	if c.Bucket == "" {
		return nil, errors.New("S3 bucket can't be empty")
	}

	if name == "" {
		name = model.DefaultDataFile
	}

	cfg := aws.NewConfig().
		WithEndpoint(c.EndpointURL).
		WithRegion(c.Region).
		WithLogger(s3logger{}).
		WithLogLevel(aws.LogDebug)
	sess, err := session.NewSessionWithOptions(session.Options{Config: *cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize S3 session")
	}

	return &S3{
		api:    s3.New(sess),
		bucket: c.Bucket,
		prefix: c.Prefix,
		name:   name,
	}, nil
}

func (s *S3) Name() string {
	return s.name
}

func (s *S3) Load(ctx context.Context) (string, error) {
	key := s.buildKey(s.name)
	logger := log.WithField("key", key)

	logger.Debugf("getting data file from %s", s.bucket)
	resp, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			switch awsErr.Code() {
			case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
				return "", &model.FetchError{Resource: s.name, StatusCode: http.StatusNotFound}
			}
		}
		return "", errors.Wrap(err, "failed to get data file")
	}

	defer resp.Body.Close()

	return readAll(resp.Body, s.name)
}

func (s *S3) buildKey(name string) string {
	return path.Join(s.prefix, name)
}

type s3logger struct{}

func (s s3logger) Log(args ...interface{}) {
	log.Debug(args...)
}
