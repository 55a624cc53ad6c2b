package extractor

import "strings"

// Kind is the closed set of artifact formats the extractor understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindDOCX
	KindText
	KindImage
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	}
	return "unknown"
}

var mediaTypes = map[string]Kind{
	mimePDF:  KindPDF,
	mimeDOCX: KindDOCX,
}

var mediaPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"text/", KindText},
	{"image/", KindImage},
}

var extensions = map[string]Kind{
	"pdf":  KindPDF,
	"docx": KindDOCX,
	"txt":  KindText,
	"png":  KindImage,
	"jpg":  KindImage,
	"jpeg": KindImage,
	"gif":  KindImage,
	"bmp":  KindImage,
	"webp": KindImage,
}

// Classify picks the handler for an artifact. A declared media type that matches
// a known value wins; the extension is only consulted when it does not.
func Classify(mediaType, name string) Kind {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	if k, ok := mediaTypes[mt]; ok {
		return k
	}
	for _, p := range mediaPrefixes {
		if strings.HasPrefix(mt, p.prefix) {
			return p.kind
		}
	}
	return extensions[Extension(name)]
}

// Extension returns the lower-cased text after the last dot, or "".
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// ImageMediaType guesses an image MIME type from the extension when none was declared.
func ImageMediaType(mediaType, name string) string {
	if strings.HasPrefix(strings.ToLower(mediaType), "image/") {
		return mediaType
	}
	switch Extension(name) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png", "gif", "bmp", "webp":
		return "image/" + Extension(name)
	}
	return "application/octet-stream"
}
