// Package netx holds HTTP body helpers.
package netx

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sort"
)

// FilePart is one file of a multipart body.
type FilePart struct {
	Field string
	Name  string
	Data  []byte
}

// Multipart encodes fields and files as multipart/form-data. Fields are
// written in key order so bodies are reproducible. It returns the body and
// the Content-Type header value carrying the boundary.
func Multipart(fields map[string]string, files []FilePart) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
