package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// UploadPlot uploads a rendered plot file to an S3 bucket and returns a
// presigned link valid for one hour. The object key is the file name
// prefixed with the upload date.
func UploadPlot(path, bucket, region string) (string, error) {
	sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(region)}))

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()

	key := time.Now().Format("2006-01-02") + " " + filepath.Base(path)
	uploader := s3manager.NewUploader(sess)
	if _, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		return "", fmt.Errorf("artifact: upload %s to %s: %w", path, bucket, err)
	}

	svc := s3.New(sess)
	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	link, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("artifact: presign %s: %w", key, err)
	}
	return link, nil
}
