package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("txt", []byte("hello résumé"))
	require.NoError(t, err)
	assert.Equal(t, "hello résumé", text)

	text, err = ExtractText("text/plain", []byte("mime tagged"))
	require.NoError(t, err)
	assert.Equal(t, "mime tagged", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	// Unsupported formats degrade to empty text, not an error, so the
	// heuristics fall through to their sentinels.
	text, err := ExtractText("odt", []byte("anything"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText("pdf", []byte("definitely not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText("application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte{0x00, 0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, "pdf", FormatFromFilename("Jane_Doe_CV.PDF"))
	assert.Equal(t, "docx", FormatFromFilename("resume.docx"))
	assert.Equal(t, "", FormatFromFilename("README"))
}
