package gateway

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
)

// NewFormPayload builds a multipart payload with optional text fields and a
// single file part. The returned payload carries the writer's boundary
// content type; the gateway sends it unmodified.
func NewFormPayload(fields map[string]string, fileField, fileName string, file io.Reader) (*FormPayload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, errors.Wrap(err, "[NewFormPayload] WriteField")
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, errors.Wrap(err, "[NewFormPayload] CreateFormFile")
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, errors.Wrap(err, "[NewFormPayload] copy file")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "[NewFormPayload] close writer")
	}

	return &FormPayload{
		Reader:      &buf,
		ContentType: writer.FormDataContentType(),
	}, nil
}
