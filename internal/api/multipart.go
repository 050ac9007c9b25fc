package api

import (
	"bytes"
	"mime/multipart"
)

// encodeMultipart builds a multipart/form-data body from plain fields and
// an optional file part. It returns the encoded buffer and the content type
// carrying the generated boundary.
func encodeMultipart(m *multipartBody) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for key, values := range m.fields {
		for _, value := range values {
			if err := w.WriteField(key, value); err != nil {
				return nil, "", err
			}
		}
	}

	if m.file != nil {
		part, err := w.CreateFormFile(m.fileField, m.file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(m.file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
