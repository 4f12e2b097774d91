// Package media stores uploaded files and hands back durable download URLs
// used as message content and profile pictures.
package media

import "context"

type Uploader interface {
	// Upload stores data under path and returns the durable download URL.
	Upload(ctx context.Context, path string, data []byte) (string, error)

	// DownloadURL resolves an already uploaded path.
	DownloadURL(ctx context.Context, path string) (string, error)
}
