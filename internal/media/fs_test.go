package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

func TestFSUploader(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	up := NewFSUploader(config.MediaConfig{BaseDir: dir, BaseURL: "http://localhost:8080/media/"})

	t.Run("upload returns durable url", func(t *testing.T) {
		url, err := up.Upload(ctx, "images/alice-mail-com_profile_pic.png", []byte("png-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/media/images/alice-mail-com_profile_pic.png", url)

		data, err := os.ReadFile(filepath.Join(dir, "images", "alice-mail-com_profile_pic.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)

		got, err := up.DownloadURL(ctx, "images/alice-mail-com_profile_pic.png")
		require.NoError(t, err)
		assert.Equal(t, url, got)
	})

	t.Run("download of missing path fails", func(t *testing.T) {
		_, err := up.DownloadURL(ctx, "images/ghost.png")
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})

	t.Run("path traversal is contained", func(t *testing.T) {
		url, err := up.Upload(ctx, "../../etc/passwd.png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/media/etc/passwd.png", url)

		_, statErr := os.Stat(filepath.Join(dir, "etc", "passwd.png"))
		assert.NoError(t, statErr)
	})
}
