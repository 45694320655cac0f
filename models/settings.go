package models

// Settings is the runtime configuration shared by the commands and workers.
type Settings struct {
	StripeSecretKey string
	// AppBaseURL carries the scheme, e.g. https://app.lineblocs.com
	AppBaseURL string
	QueueURL   string
	RedisURL   string

	Credentials map[string]string `json:"credentials"`

	MailgunDomain  string
	MailgunAPIKey  string
	AlertEmailFrom string
	AlertEmailTo   string
}

// GetAWSRegion is a helper to safely retrieve the region
func (s *Settings) GetAWSRegion() string {
	return s.Credentials["aws_region"]
}

// GetS3Bucket is a helper to safely retrieve the bucket name
func (s *Settings) GetS3Bucket() string {
	return s.Credentials["s3_bucket"]
}
