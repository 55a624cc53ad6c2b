// Package models holds the data shared by every stage of the summary pipeline.
package models

// Artifact is one user-submitted input unit: an uploaded file, pasted text,
// a transcript or an image. It is never mutated once built.
type Artifact struct {
	Name      string
	MediaType string
	Size      int64
	data      []byte
}

// NewArtifact copies data so later changes by the caller cannot leak into the pipeline.
func NewArtifact(name, mediaType string, data []byte) Artifact {
	buf := make([]byte, len(data))
	copy(buf, data)
	return Artifact{
		Name:      name,
		MediaType: mediaType,
		Size:      int64(len(buf)),
		data:      buf,
	}
}

// NewTextArtifact wraps pasted text so it flows through the same extraction path as uploads.
func NewTextArtifact(name, text string) Artifact {
	if name == "" {
		name = "pasted-text.txt"
	}
	return NewArtifact(name, "text/plain", []byte(text))
}

// Bytes returns a copy of the raw content.
func (a Artifact) Bytes() []byte {
	buf := make([]byte, len(a.data))
	copy(buf, a.data)
	return buf
}

// DisplayName is the name used in outcomes and labels.
func (a Artifact) DisplayName() string {
	if a.Name == "" {
		return "unknown"
	}
	return a.Name
}
