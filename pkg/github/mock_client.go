package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/github"
)

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of the GitHub client for testing
type MockClient struct {
	Releases       map[string]*github.RepositoryRelease // key: "owner/repo@tag"
	UploadedAssets []string                             // asset paths passed to UploadReleaseAsset
	CreateError    error
	UploadError    error

	nextID int64
}

// NewMockClient creates a new mock GitHub client
func NewMockClient() *MockClient {
	return &MockClient{
		Releases: make(map[string]*github.RepositoryRelease),
	}
}

func releaseKey(owner, repo, tag string) string {
	return fmt.Sprintf("%s/%s@%s", owner, repo, tag)
}

// GetRelease returns a stored release or a NotFoundError.
func (m *MockClient) GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	release, ok := m.Releases[releaseKey(owner, repo, tag)]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("release %s not found", tag)}
	}
	return release, nil
}

// CreateRelease stores a release and assigns it an ID.
func (m *MockClient) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	m.nextID++
	id := m.nextID
	release.ID = &id
	m.Releases[releaseKey(owner, repo, release.GetTagName())] = release
	return release, nil
}

// UploadReleaseAsset records the uploaded asset path.
func (m *MockClient) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, assetPath, contentType string) (*github.ReleaseAsset, error) {
	if m.UploadError != nil {
		return nil, m.UploadError
	}

	m.UploadedAssets = append(m.UploadedAssets, assetPath)
	name := assetPath
	return &github.ReleaseAsset{Name: &name}, nil
}
