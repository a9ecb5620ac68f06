package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateClientTracksProvidedKeys(t *testing.T) {
	var in UpdateClient
	require.NoError(t, json.Unmarshal([]byte(`{"company":null,"notes":"vip"}`), &in))

	assert.True(t, in.Provided("company"))
	assert.True(t, in.Provided("notes"))
	assert.False(t, in.Provided("phone"))
	assert.Nil(t, in.Company)
	require.NotNil(t, in.Notes)
	assert.Equal(t, "vip", *in.Notes)
}

func TestUpdatePropertyTracksProvidedKeys(t *testing.T) {
	var in UpdateProperty
	require.NoError(t, json.Unmarshal([]byte(`{"clientId":null}`), &in))

	assert.True(t, in.Provided("clientId"))
	assert.False(t, in.Provided("title"))
	assert.Nil(t, in.ClientID)
}
