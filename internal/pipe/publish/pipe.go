package publish

import (
	"fmt"

	gh "github.com/google/go-github/github"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/github"
	"github.com/makedist/makedist/pkg/pipe"
)

// newClient is swapped out by tests to inject a mock client.
var newClient = func(token string) (github.ClientInterface, error) {
	return github.NewClient(token)
}

// Pipe uploads the finished archives as assets of a GitHub release tagged
// v<version>, creating the release if it does not exist yet.
type Pipe struct{}

func (Pipe) String() string { return "publishing release" }

func (Pipe) Run(ctx *context.Context) error {
	if !ctx.Publish {
		return pipe.Skip("publishing not requested")
	}
	if len(ctx.Artifacts.Archives) == 0 {
		return pipe.Skip("no archives to publish")
	}

	cfg := ctx.Config.Release.GitHub

	client, err := newClient(github.GetGitHubToken())
	if err != nil {
		return err
	}

	tag := "v" + ctx.Meta.Version
	release, err := client.GetRelease(ctx.StdCtx, cfg.Owner, cfg.Repo, tag)
	if err != nil {
		if !github.IsNotFound(err) {
			return fmt.Errorf("failed to look up release %s: %w", tag, err)
		}

		ctx.Logger.Infof("creating release %s", tag)
		release, err = client.CreateRelease(ctx.StdCtx, cfg.Owner, cfg.Repo, &gh.RepositoryRelease{
			TagName: &tag,
			Name:    &tag,
			Draft:   &cfg.Draft,
		})
		if err != nil {
			return err
		}
	}

	for _, asset := range ctx.Artifacts.Archives {
		ctx.Logger.Infof("uploading %s", asset)
		contentType := github.ContentTypeForAsset(asset)
		if _, err := client.UploadReleaseAsset(ctx.StdCtx, cfg.Owner, cfg.Repo, release.GetID(), asset, contentType); err != nil {
			return err
		}
	}

	return nil
}
