package netx

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipart_FieldsAndFiles(t *testing.T) {
	body, ct, err := Multipart(
		map[string]string{"bio": "hello", "first_name": "Ada"},
		[]FilePart{{Field: "files", Name: "me.png", Data: []byte{0x89, 'P', 'N', 'G'}}},
	)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(body, params["boundary"])

	var names []string
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)

		names = append(names, p.FormName())
		switch p.FormName() {
		case "bio":
			assert.Equal(t, "hello", string(data))
		case "first_name":
			assert.Equal(t, "Ada", string(data))
		case "files":
			assert.Equal(t, "me.png", p.FileName())
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
		}
	}

	assert.Equal(t, []string{"bio", "first_name", "files"}, names)
}

func TestMultipart_Empty(t *testing.T) {
	body, ct, err := Multipart(nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, ct)
	assert.NotZero(t, body.Len(), "closing boundary is always written")
}
