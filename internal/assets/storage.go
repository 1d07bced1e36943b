package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// Storage persists generated media (narration audio, AI images) and returns
// a URL the front end can play directly.
type Storage interface {
	Save(userID, projectID, filename string, data []byte, contentType string) (string, error)
	DeleteProjectAssets(userID, projectID string) error
}

// SupabaseStorage stores assets in a Supabase Storage bucket.
type SupabaseStorage struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewSupabaseStorage(supabaseURL, serviceKey, bucket string) *SupabaseStorage {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &SupabaseStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func (s *SupabaseStorage) Save(userID, projectID, filename string, data []byte, contentType string) (string, error) {
	storagePath := fmt.Sprintf("users/%s/projects/%s/%s", userID, projectID, filename)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
	return publicURL, nil
}

func (s *SupabaseStorage) DeleteProjectAssets(userID, projectID string) error {
	prefix := fmt.Sprintf("users/%s/projects/%s/", userID, projectID)

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	filePaths := make([]string, len(files))
	for i, file := range files {
		filePaths[i] = file.Name
	}
	if _, err := s.client.RemoveFile(s.bucket, filePaths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}

// LocalStorage writes assets under a directory served by the API itself.
// Used whenever Supabase Storage is not configured.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(userID, projectID, filename string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(s.baseDir, "users", userID, "projects", projectID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write asset: %w", err)
	}

	return fmt.Sprintf("%s/assets/users/%s/projects/%s/%s", s.baseURL, userID, projectID, filename), nil
}

func (s *LocalStorage) DeleteProjectAssets(userID, projectID string) error {
	dir := filepath.Join(s.baseDir, "users", userID, "projects", projectID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete assets: %w", err)
	}
	return nil
}
