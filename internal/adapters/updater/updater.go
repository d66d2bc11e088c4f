// Package updater implements the best-effort application update check.
//
// The check polls a repository's update manifest (update.json on the raw
// GitHub content host), compares versions and reports a newer release.
// Failures never block the application: Run logs and swallows them.
package updater

import (
	"context"
	"encoding/json"
	"fmt"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// rawContentHost serves repository files without the API rate limits.
const rawContentHost = "https://raw.githubusercontent.com"

// Updater checks a repository for newer application releases.
type Updater struct {
	owner     string
	repo      string
	branch    string
	installed string

	source ports.ReleaseSource
	log    ports.Logger
}

// New creates an Updater for the given repository coordinates. The source
// should fetch uncached: stale manifests hide new releases.
func New(owner, repo, branch, installed string, source ports.ReleaseSource, log ports.Logger) *Updater {
	return &Updater{
		owner:     owner,
		repo:      repo,
		branch:    branch,
		installed: installed,
		source:    source,
		log:       log,
	}
}

func (u *Updater) manifestURL() string {
	return fmt.Sprintf("%s/%s/%s/%s/update.json", rawContentHost, u.owner, u.repo, u.branch)
}

func (u *Updater) changelogURL() string {
	return fmt.Sprintf("%s/%s/%s/%s/Changelog.md", rawContentHost, u.owner, u.repo, u.branch)
}

// Check fetches the update manifest and returns the advertised release if
// it is newer than the installed version, or nil when up to date. The
// manifest is always fetched fresh so a release published after the last
// check is visible immediately. Dev builds never report an update.
func (u *Updater) Check(ctx context.Context) (*domain.Release, error) {
	if domain.IsDevVersion(u.installed) {
		return nil, nil
	}

	data, err := u.source.Fetch(ctx, u.manifestURL())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch update manifest")
	}

	var release domain.Release
	if err := json.Unmarshal(data, &release); err != nil {
		return nil, zerr.Wrap(err, "failed to parse update manifest")
	}

	newer, err := domain.VersionNewer(release.Version, u.installed)
	if err != nil {
		return nil, err
	}
	if !newer {
		return nil, nil
	}
	return &release, nil
}

// Changelog fetches the repository changelog. It is not cached: release
// notes change with every release.
func (u *Updater) Changelog(ctx context.Context) (string, error) {
	data, err := u.source.Fetch(ctx, u.changelogURL())
	if err != nil {
		return "", zerr.Wrap(err, "failed to fetch changelog")
	}
	return string(data), nil
}

// Run performs the update check and only logs the outcome. All failures
// are swallowed: update checking is best-effort and must never block
// application startup.
func (u *Updater) Run(ctx context.Context) {
	u.log.Info("checking for update")

	release, err := u.Check(ctx)
	if err != nil {
		u.log.Error(zerr.Wrap(err, "update check failed"))
		return
	}
	if release == nil {
		u.log.Info("no update available")
		return
	}

	u.log.Info(fmt.Sprintf("update available: installed %s, latest %s (%s)",
		u.installed, release.Version, release.DownloadURL))
}
