package domain

// Release describes a published application release as advertised by the
// repository's update manifest.
type Release struct {
	// Version is the released version string, e.g. "1.4.0".
	Version string `json:"version"`

	// DownloadURL points at the distributable archive for this release.
	DownloadURL string `json:"download_url"`

	// Changelog holds the release notes as Markdown. Empty when the
	// changelog could not be fetched.
	Changelog string `json:"-"`
}
