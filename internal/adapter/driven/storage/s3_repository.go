package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
)

// putObjectAPI is the part of the S3 client the repository uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3RepositoryImpl envia relatórios exportados para um bucket S3.
type S3RepositoryImpl struct {
	profile string
	region  string

	mu     sync.Mutex
	client putObjectAPI
}

// NewS3Repository cria o repositório. O cliente é criado na primeira chamada a Upload,
// usando a cadeia de credenciais padrão (ou o perfil informado).
func NewS3Repository(profile, region string) repository.StorageRepository {
	return &S3RepositoryImpl{profile: profile, region: region}
}

func (r *S3RepositoryImpl) getClient(ctx context.Context) (putObjectAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// Upload envia o arquivo local para s3://bucket/key e retorna a URI do objeto.
func (r *S3RepositoryImpl) Upload(ctx context.Context, localPath, bucket, key string) (string, error) {
	if bucket == "" {
		return "", fmt.Errorf("no S3 bucket given for %s", localPath)
	}
	if key == "" {
		key = filepath.Base(localPath)
	}

	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType := mime.TypeByExtension(filepath.Ext(localPath)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("error uploading %s to s3://%s/%s: %w", localPath, bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
