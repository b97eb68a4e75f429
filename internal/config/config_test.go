package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("123, 456,789")
	require.NoError(t, err)
	assert.Equal(t, []int64{123, 456, 789}, ids)
}

func TestParseIDListEmpty(t *testing.T) {
	ids, err := parseIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = parseIDList(" , ")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestParseIDListInvalid(t *testing.T) {
	_, err := parseIDList("123, abc")
	assert.Error(t, err)
}
