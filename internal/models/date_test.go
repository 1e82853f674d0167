package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, 9, 15)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal([]byte(`"2026-09-15"`), &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"15/09/2026"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`20260915`), &parsed))
}

func TestDate_JSON_NullablePointer(t *testing.T) {
	type payload struct {
		PurchaseDate *Date `json:"purchase_date"`
	}

	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{"purchase_date":null}`), &p))
	assert.Nil(t, p.PurchaseDate)

	assert.NoError(t, json.Unmarshal([]byte(`{"purchase_date":"2026-08-30"}`), &p))
	assert.NotNil(t, p.PurchaseDate)
	assert.Equal(t, "2026-08-30", p.PurchaseDate.String())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	assert.NoError(t, d.Scan(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-15", d.String())

	assert.NoError(t, d.Scan("2026-09-15"))
	assert.Equal(t, "2026-09-15", d.String())

	assert.NoError(t, d.Scan([]byte("2026-09-15")))
	assert.Equal(t, "2026-09-15", d.String())

	assert.Error(t, d.Scan(12345))
}

func TestDate_Value(t *testing.T) {
	d := NewDate(2026, 9, 15)

	v, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, d.Time, v)
}
