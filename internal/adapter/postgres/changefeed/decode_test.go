package changefeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const owner = "0d9b7a8c-3c1e-4b36-9d2f-4a0c6a9e5f11"

func TestDecode_Insert(t *testing.T) {
	t.Parallel()

	payload := `{"op":"INSERT","record":{"id":"a1","user_id":"0D9B7A8C-3C1E-4B36-9D2F-4A0C6A9E5F11",
		"name":"Parka","main_category":"外套","sub_category":null,"season":["冬"],
		"purchase_date":"2023-11-20","price":899.00,"frequency":"每天","color":"藏青色",
		"color_hex":null,"created_at":"2024-01-02T03:04:05.123456+00:00",
		"updated_at":"2024-01-02T03:04:05.123456+00:00","end_reason":null,"end_date":null}}`

	ch, ok, err := decode(payload, owner)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, domain.ChangeInsert, ch.Type)
	it := ch.Item
	assert.Equal(t, "a1", it.ID)
	assert.Equal(t, "Parka", it.Name)
	assert.Equal(t, domain.SeasonWinter, it.Season)
	assert.Equal(t, "2023-11", it.PurchaseDate)
	assert.Equal(t, domain.FrequencyOften, it.Frequency)
	assert.Equal(t, "大衣", it.SubCategory)
	assert.Equal(t, "#1E3A5F", it.ColorHex)
	require.NotNil(t, it.Price)
	assert.Equal(t, 899.0, *it.Price)
	assert.True(t, it.UpdatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 123456000, time.UTC)))
}

func TestDecode_DeleteCarriesOnlyID(t *testing.T) {
	t.Parallel()

	payload := `{"op":"DELETE","record":{"id":"gone","user_id":"` + owner + `","name":"Old"}}`

	ch, ok, err := decode(payload, owner)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeDelete, ch.Type)
	assert.Equal(t, domain.Item{ID: "gone"}, ch.Item)
}

func TestDecode_BadFieldsDegrade(t *testing.T) {
	t.Parallel()

	payload := `{"op":"UPDATE","record":{"id":"a1","user_id":"` + owner + `","name":"Parka",
		"price":"abc","created_at":"yesterday","updated_at":"2024-06-01 10:00:00",
		"end_date":"not a date","end_reason":null}}`

	ch, ok, err := decode(payload, owner)
	require.NoError(t, err)
	require.True(t, ok)

	it := ch.Item
	assert.Equal(t, "Parka", it.Name)
	assert.Nil(t, it.Price)
	assert.True(t, it.CreatedAt.IsZero())
	assert.True(t, it.UpdatedAt.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, it.EndDate)
}

func TestDecode_OtherOwnerIgnored(t *testing.T) {
	t.Parallel()

	payload := `{"op":"UPDATE","record":{"id":"x","user_id":"11111111-1111-1111-1111-111111111111"}}`

	_, ok, err := decode(payload, owner)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not json":   `{op`,
		"unknown op": `{"op":"TRUNCATE","record":{"id":"x","user_id":"` + owner + `"}}`,
		"no id":      `{"op":"INSERT","record":{"user_id":"` + owner + `"}}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, ok, err := decode(payload, owner)
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}

func TestChannel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "clothes_items_changes", Channel("clothes_items"))
}
