package storage

import (
	"backoffice-service/internal/app/models"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	putBucket string
	putKey    string
	putBody   []byte
	putErr    error
	objects   []minio.ObjectInfo
}

func (f *fakeObjectStore) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.putBucket, f.putKey, f.putBody = bucketName, objectName, body
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (f *fakeObjectStore) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(f.objects))
	for _, object := range f.objects {
		ch <- object
	}
	close(ch)
	return ch
}

func TestMinioDocumentationArchive_Archive(t *testing.T) {
	store := &fakeObjectStore{}
	archive := &minioDocumentationArchive{Store: store, BucketName: "docs"}
	plan := &models.DiagnosisTreatmentPlan{
		ID:        "plan-1",
		ClientID:  "client-1",
		Diagnoses: []models.Diagnosis{{Code: "F41.1", Description: "Generalized anxiety disorder"}},
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}

	entry, err := archive.Archive(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, "docs", store.putBucket)
	assert.Equal(t, "clients/client-1/diagnosis-treatment-plans/plan-1/1700000000.json", store.putKey)
	assert.Contains(t, string(store.putBody), `"F41.1"`)
	assert.Equal(t, "plan-1", entry.PlanID)
	assert.Equal(t, int64(len(store.putBody)), entry.Size)
}

func TestMinioDocumentationArchive_ArchiveFailure(t *testing.T) {
	archive := &minioDocumentationArchive{Store: &fakeObjectStore{putErr: errors.New("boom")}, BucketName: "docs"}

	_, err := archive.Archive(context.Background(), &models.DiagnosisTreatmentPlan{ID: "p", ClientID: "c"})
	assert.Error(t, err)
}

func TestMinioDocumentationArchive_ListByClientID(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	store := &fakeObjectStore{objects: []minio.ObjectInfo{
		{Key: "clients/c/diagnosis-treatment-plans/p1/1.json", Size: 10, LastModified: older},
		{Key: "clients/c/diagnosis-treatment-plans/p2/2.json", Size: 20, LastModified: newer},
	}}
	archive := &minioDocumentationArchive{Store: store, BucketName: "docs"}

	entries, err := archive.ListByClientID(context.Background(), "c")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p2", entries[0].PlanID)
	assert.Equal(t, "p1", entries[1].PlanID)
}

func TestMinioDocumentationArchive_ListError(t *testing.T) {
	store := &fakeObjectStore{objects: []minio.ObjectInfo{{Err: errors.New("denied")}}}
	archive := &minioDocumentationArchive{Store: store, BucketName: "docs"}

	_, err := archive.ListByClientID(context.Background(), "c")
	assert.Error(t, err)
}
