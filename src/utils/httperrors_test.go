package utils_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"finserver/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	t.Run("message with embedded quotes stays valid JSON", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		utils.WriteError(recorder, utils.BadRequest(`unsupported image type "text/html", expected jpeg, png or webp`))

		assert.Equal(t, 400, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		require.True(t, json.Valid(recorder.Body.Bytes()))

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, `unsupported image type "text/html", expected jpeg, png or webp`, body["error"])
	})

	t.Run("plain error maps to 500", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		utils.WriteError(recorder, errors.New("boom"))

		assert.Equal(t, 500, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Internal Server Error", body["error"])
	})
}
