package gemini

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// artifactName derives a unique filename for a generated image: a UTC
// timestamp plus a short random suffix to avoid collisions between calls
// landing in the same second. The extension follows the MIME type.
func artifactName(now time.Time, mimeType string) string {
	return fmt.Sprintf("imagine_%s_%s%s",
		now.Format("20060102_150405"), uuid.NewString()[:8], extension(mimeType))
}

func extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// saveArtifact writes the blob's bytes under dir with a derived unique name
// and returns the resulting path.
func saveArtifact(dir string, blob *genai.Blob) (string, error) {
	path := filepath.Join(dir, artifactName(time.Now().UTC(), blob.MIMEType))
	if err := os.WriteFile(path, blob.Data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %v", err)
	}
	return path, nil
}
