package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/mechcorp/maintenance-api/config"
)

// ReportArchive stores a copy of every generated report PDF. Archived
// copies are write-only from the API's point of view; they are never read
// back to serve a request.
type ReportArchive interface {
	StoreReport(ctx context.Context, filename string, pdf []byte) (string, error)
}

// S3ReportArchive archives report PDFs in an S3 bucket.
type S3ReportArchive struct {
	client *s3.Client
	bucket string
}

var reportArchiveInstance ReportArchive

// InitReportArchive initializes the S3 archive. When no bucket is
// configured, archiving stays disabled and the instance remains nil.
func InitReportArchive() (ReportArchive, error) {
	cfg := appConfig.GetConfig()
	if !cfg.ArchiveEnabled() {
		return nil, nil
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	reportArchiveInstance = &S3ReportArchive{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.ReportS3Bucket,
	}
	return reportArchiveInstance, nil
}

// GetReportArchive returns the archive instance, nil when archiving is disabled
func GetReportArchive() ReportArchive {
	return reportArchiveInstance
}

// SetReportArchive sets the archive instance (primarily for testing)
func SetReportArchive(a ReportArchive) {
	reportArchiveInstance = a
}

// StoreReport uploads the PDF under reports/{timestamp}_{filename} and
// returns the object key.
func (a *S3ReportArchive) StoreReport(ctx context.Context, filename string, pdf []byte) (string, error) {
	key := fmt.Sprintf("reports/%d_%s", time.Now().Unix(), filename)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive report to S3: %w", err)
	}
	return key, nil
}
