package dashsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func setSearchEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DASH_VECTOR_ENDPOINT", "vrs-cn-test.dashvector.example.com")
	t.Setenv("DASH_VECTOR_APIKEY", "vec-key")
	t.Setenv("DASH_SCOPE_APIKEY", "emb-key")
	t.Setenv("DASH_SCOPE_DIMENSION", "")
	t.Setenv("DASH_SCOPE_OUTPUT_TYPE", "")
}

func TestFXModule(t *testing.T) {
	setSearchEnv(t)

	var client *Client
	app := fxtest.New(t,
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, client)
}

func TestFXModuleRejectsIncompatibleEmbedding(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "dimension", env: "DASH_SCOPE_DIMENSION", val: "512"},
		{name: "sparse only", env: "DASH_SCOPE_OUTPUT_TYPE", val: "sparse"},
		{name: "dense only", env: "DASH_SCOPE_OUTPUT_TYPE", val: "dense"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSearchEnv(t)
			t.Setenv(tt.env, tt.val)

			var client *Client
			app := fx.New(
				FXModule,
				fx.Populate(&client),
				fx.NopLogger,
			)
			require.Error(t, app.Err())
			assert.Contains(t, app.Err().Error(), "dashsearch: embedding")
			assert.Nil(t, client)
		})
	}
}
