package utils_test

import (
	"testing"

	"finserver/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extractTarget struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
}

func TestExtractFirstJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		var target extractTarget
		err := utils.ExtractFirstJSONObject(`{"merchant": "Alfamart", "amount": 52000}`, &target)
		require.NoError(t, err)
		assert.Equal(t, "Alfamart", target.Merchant)
		assert.Equal(t, 52000.0, target.Amount)
	})

	t.Run("object wrapped in prose and fences", func(t *testing.T) {
		reply := "Here is the extracted data:\n```json\n{\"merchant\": \"Indomaret\", \"amount\": 17500}\n```\nLet me know if you need anything else."
		var target extractTarget
		err := utils.ExtractFirstJSONObject(reply, &target)
		require.NoError(t, err)
		assert.Equal(t, "Indomaret", target.Merchant)
	})

	t.Run("braces inside string values", func(t *testing.T) {
		var target extractTarget
		err := utils.ExtractFirstJSONObject(`{"merchant": "Toko {Jaya}", "amount": 1000}`, &target)
		require.NoError(t, err)
		assert.Equal(t, "Toko {Jaya}", target.Merchant)
	})

	t.Run("escaped quote inside string", func(t *testing.T) {
		var target extractTarget
		err := utils.ExtractFirstJSONObject(`{"merchant": "Warung \"Sederhana\"", "amount": 25000}`, &target)
		require.NoError(t, err)
		assert.Equal(t, `Warung "Sederhana"`, target.Merchant)
	})

	t.Run("nested object picks the outer one", func(t *testing.T) {
		var target map[string]interface{}
		err := utils.ExtractFirstJSONObject(`{"outer": {"inner": 1}, "amount": 2}`, &target)
		require.NoError(t, err)
		assert.Contains(t, target, "outer")
		assert.Contains(t, target, "amount")
	})

	t.Run("no object at all", func(t *testing.T) {
		var target extractTarget
		err := utils.ExtractFirstJSONObject("I could not read the image, sorry.", &target)
		assert.Error(t, err)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		var target extractTarget
		err := utils.ExtractFirstJSONObject(`{"merchant": "Alfamart"`, &target)
		assert.Error(t, err)
	})
}

func TestStripEmphasis(t *testing.T) {
	assert.Equal(t, "Saldo kamu Rp 1.000.000", utils.StripEmphasis("Saldo kamu **Rp 1.000.000**"))
	assert.Equal(t, "Ringkasan", utils.StripEmphasis("## Ringkasan"))
	assert.Equal(t, "penting sekali", utils.StripEmphasis("__penting__ sekali"))
	assert.Equal(t, "baris satu\nbaris dua", utils.StripEmphasis("baris satu\n# baris dua"))
}
