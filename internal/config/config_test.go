package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_FIRESTORE", "")
	t.Setenv("FIRESTORE_DATABASE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.UseFirestore)
	assert.Equal(t, "coffeeshop-demo", cfg.Firestore.DatabaseID)
}

func TestLoad_FirestoreDisabled(t *testing.T) {
	for _, v := range []string{"false", "FALSE", "0", "no"} {
		t.Setenv("USE_FIRESTORE", v)

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.UseFirestore, "USE_FIRESTORE=%s", v)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("USE_FIRESTORE", "TRUE")
	t.Setenv("FIRESTORE_DATABASE", "coffeeshop-staging")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "earlybirds-demo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.True(t, cfg.UseFirestore)
	assert.Equal(t, "coffeeshop-staging", cfg.Firestore.DatabaseID)
	assert.Equal(t, "earlybirds-demo", cfg.Firestore.ProjectID)
}
