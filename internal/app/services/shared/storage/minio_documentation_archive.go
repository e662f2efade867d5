package storage

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

const documentationPrefixFormat = "clients/%s/diagnosis-treatment-plans/"

// objectStore is the part of *minio.Client the archive relies on.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

type minioDocumentationArchive struct {
	Store      objectStore
	BucketName string
}

func NewMinioDocumentationArchive(minioClient *minio.Client, bucketName string) contracts.DocumentationArchive {
	return &minioDocumentationArchive{
		Store:      minioClient,
		BucketName: bucketName,
	}
}

func documentationObjectKey(plan *models.DiagnosisTreatmentPlan) string {
	return fmt.Sprintf(documentationPrefixFormat, plan.ClientID) + fmt.Sprintf("%s/%d.json", plan.ID, plan.CreatedAt.Unix())
}

// Archive stores an immutable JSON snapshot of the plan.
func (m *minioDocumentationArchive) Archive(ctx context.Context, plan *models.DiagnosisTreatmentPlan) (*models.DocumentationHistoryEntry, error) {
	snapshot, err := json.Marshal(plan)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectKey := documentationObjectKey(plan)
	info, err := m.Store.PutObject(ctx, m.BucketName, objectKey, bytes.NewReader(snapshot), int64(len(snapshot)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return &models.DocumentationHistoryEntry{
		PlanID:     plan.ID,
		ObjectKey:  objectKey,
		Size:       info.Size,
		ArchivedAt: plan.CreatedAt,
	}, nil
}

// ListByClientID returns the archived snapshots of a client, latest first.
func (m *minioDocumentationArchive) ListByClientID(ctx context.Context, clientID string) ([]models.DocumentationHistoryEntry, error) {
	prefix := fmt.Sprintf(documentationPrefixFormat, clientID)
	entries := make([]models.DocumentationHistoryEntry, 0)

	for object := range m.Store.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, m.BucketName)
		}

		planID, _, found := strings.Cut(strings.TrimPrefix(object.Key, prefix), "/")
		if !found {
			continue
		}
		entries = append(entries, models.DocumentationHistoryEntry{
			PlanID:     planID,
			ObjectKey:  object.Key,
			Size:       object.Size,
			ArchivedAt: object.LastModified,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ArchivedAt.After(entries[j].ArchivedAt)
	})
	return entries, nil
}
