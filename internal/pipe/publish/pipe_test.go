package publish

import (
	stdctx "context"
	"errors"
	"testing"

	"github.com/makedist/makedist/pkg/config"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/github"
	"github.com/makedist/makedist/pkg/manifest"
	"github.com/makedist/makedist/pkg/pipe"
	"github.com/sirupsen/logrus"
)

func newContext() *context.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := config.Default()
	cfg.Release.GitHub = config.GitHubConfig{Owner: "octocat", Repo: "demo"}

	ctx := context.NewContext(stdctx.Background(), cfg, logger)
	ctx.Meta = &manifest.Metadata{Name: "App", Version: "1.0"}
	return ctx
}

// withMockClient swaps the client factory for the duration of a test.
func withMockClient(t *testing.T, mock *github.MockClient) {
	t.Helper()
	orig := newClient
	newClient = func(token string) (github.ClientInterface, error) {
		return mock, nil
	}
	t.Cleanup(func() { newClient = orig })
}

func TestPipeSkipsWithoutPublishFlag(t *testing.T) {
	ctx := newContext()
	ctx.Artifacts.Archives = []string{"dist/App-1.0-win32-x64.zip"}

	err := Pipe{}.Run(ctx)

	var skip pipe.IsSkip
	if !errors.As(err, &skip) || !skip.IsSkip() {
		t.Errorf("Run() = %v, want a skip error", err)
	}
}

func TestPipeSkipsWithoutArchives(t *testing.T) {
	ctx := newContext()
	ctx.Publish = true

	err := Pipe{}.Run(ctx)

	var skip pipe.IsSkip
	if !errors.As(err, &skip) || !skip.IsSkip() {
		t.Errorf("Run() = %v, want a skip error", err)
	}
}

func TestPipeCreatesReleaseAndUploads(t *testing.T) {
	mock := github.NewMockClient()
	withMockClient(t, mock)

	ctx := newContext()
	ctx.Publish = true
	ctx.Artifacts.Archives = []string{
		"dist/App-1.0-win32-ia32.zip",
		"dist/App-1.0-win32-x64.zip",
	}

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, ok := mock.Releases["octocat/demo@v1.0"]; !ok {
		t.Error("release v1.0 was not created")
	}
	if len(mock.UploadedAssets) != 2 {
		t.Fatalf("uploaded %d assets, want 2: %v", len(mock.UploadedAssets), mock.UploadedAssets)
	}
	if mock.UploadedAssets[0] != "dist/App-1.0-win32-ia32.zip" {
		t.Errorf("assets uploaded out of order: %v", mock.UploadedAssets)
	}
}

func TestPipeReusesExistingRelease(t *testing.T) {
	mock := github.NewMockClient()
	withMockClient(t, mock)

	ctx := newContext()
	ctx.Publish = true
	ctx.Artifacts.Archives = []string{"dist/App-1.0-linux-x64.zip"}

	// Seed an existing release; the pipe must not try to create another.
	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	mock.CreateError = errors.New("create should not be called again")

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
}

func TestCheckPipe(t *testing.T) {
	tests := []struct {
		name    string
		publish bool
		mutate  func(*config.Config)
		wantErr string
		skip    bool
	}{
		{
			name:    "skipped when not publishing",
			publish: false,
			mutate:  func(cfg *config.Config) {},
			skip:    true,
		},
		{
			name:    "valid when publishing",
			publish: true,
			mutate:  func(cfg *config.Config) {},
		},
		{
			name:    "missing owner",
			publish: true,
			mutate:  func(cfg *config.Config) { cfg.Release.GitHub.Owner = "" },
			wantErr: "release.github.owner is required",
		},
		{
			name:    "missing repo",
			publish: true,
			mutate:  func(cfg *config.Config) { cfg.Release.GitHub.Repo = "" },
			wantErr: "release.github.repo is required",
		},
		{
			name:    "unresolved env reference",
			publish: true,
			mutate:  func(cfg *config.Config) { cfg.Release.GitHub.Owner = "env(UNSET_OWNER_VAR)" },
			wantErr: "release.github.owner: environment variable UNSET_OWNER_VAR is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext()
			ctx.Publish = tt.publish
			tt.mutate(ctx.Config)

			err := CheckPipe{}.Run(ctx)

			if tt.skip {
				var skip pipe.IsSkip
				if !errors.As(err, &skip) || !skip.IsSkip() {
					t.Errorf("Run() = %v, want a skip error", err)
				}
				return
			}
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Run() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Run() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
