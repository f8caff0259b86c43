package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeUnmarshalISOString(t *testing.T) {
	var ft domain.FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &ft))
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalDateOnlyString(t *testing.T) {
	var ft domain.FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &ft))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalEpochMillis(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	var ft domain.FlexTime
	require.NoError(t, json.Unmarshal([]byte("1710498600000"), &ft))
	assert.True(t, ft.Equal(want), "got %s", ft.Time)
}

func TestFlexTimeUnmarshalLegacyObject(t *testing.T) {
	var ft domain.FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"seconds":1710498600,"nanoseconds":500000000}`), &ft))
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 500000000, time.UTC), ft.Time)
}

func TestFlexTimeUnmarshalRejectsGarbage(t *testing.T) {
	var ft domain.FlexTime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ft))
}

func TestFlexTimeMarshalsToISOUTC(t *testing.T) {
	// Whatever shape came in, the stored form is ISO-8601 UTC.
	var ft domain.FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"seconds":1710498600,"nanoseconds":0}`), &ft))

	out, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15T10:30:00Z"`, string(out))

	var round domain.FlexTime
	require.NoError(t, json.Unmarshal(out, &round))
	assert.True(t, round.Equal(ft.Time))
}

func TestTransactionSignedAmount(t *testing.T) {
	income := domain.Transaction{Type: domain.TransactionIncome, Amount: mustDecimal(t, "25.50")}
	expense := domain.Transaction{Type: domain.TransactionExpense, Amount: mustDecimal(t, "25.50")}

	assert.True(t, income.SignedAmount().Equal(mustDecimal(t, "25.50")))
	assert.True(t, expense.SignedAmount().Equal(mustDecimal(t, "-25.50")))
}
