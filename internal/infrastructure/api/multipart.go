package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// FormData accumulates multipart fields in insertion order. Arrays expand to
// indexed keys (expected_area[0], expected_area[1], ...) and files carry
// their filename and content type, matching what the backend's form parser
// expects from the mobile client.
type FormData struct {
	fields []formField
}

type formField struct {
	key   string
	value string
	file  *domain.FileAttachment
}

// NewFormData returns an empty form.
func NewFormData() *FormData {
	return &FormData{}
}

// Add appends a scalar field. Empty values are skipped, mirroring how the
// client omits null form entries.
func (f *FormData) Add(key, value string) *FormData {
	if value == "" {
		return f
	}
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddArray appends indexed entries for each element.
func (f *FormData) AddArray(key string, values []string) *FormData {
	for i, v := range values {
		f.fields = append(f.fields, formField{key: fmt.Sprintf("%s[%d]", key, i), value: v})
	}
	return f
}

// AddFile appends a file part. Nil attachments are skipped.
func (f *FormData) AddFile(key string, file *domain.FileAttachment) *FormData {
	if file == nil {
		return f
	}
	f.fields = append(f.fields, formField{key: key, file: file})
	return f
}

// Encode writes the form into a multipart body and returns it with its
// Content-Type (including the boundary).
func (f *FormData) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if field.file == nil {
			if err := writer.WriteField(field.key, field.value); err != nil {
				return nil, "", fmt.Errorf("writing field %s: %w", field.key, err)
			}
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(field.key), escapeQuotes(fileName(field.key, field.file))))
		header.Set("Content-Type", fileContentType(field.file))
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %s: %w", field.key, err)
		}
		if _, err := part.Write(field.file.Content); err != nil {
			return nil, "", fmt.Errorf("writing file part %s: %w", field.key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func fileName(key string, file *domain.FileAttachment) string {
	if file.FileName != "" {
		return file.FileName
	}
	return key + ".jpg"
}

func fileContentType(file *domain.FileAttachment) string {
	if file.ContentType != "" {
		return file.ContentType
	}
	return "image/jpeg"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
