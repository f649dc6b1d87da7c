package gemini

import (
	"time"

	"google.golang.org/genai"

	"github.com/fwojciec/imagine"
)

// Unexported helpers exposed for external tests.

func BuildConfigForTest(req imagine.Request) *genai.GenerateContentConfig {
	return buildConfig(req)
}

func ArtifactNameForTest(now time.Time, mimeType string) string {
	return artifactName(now, mimeType)
}

func SaveArtifactForTest(dir string, blob *genai.Blob) (string, error) {
	return saveArtifact(dir, blob)
}
