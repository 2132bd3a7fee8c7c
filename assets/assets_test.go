package assets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	res := Default()
	require.NoError(t, res.Validate())
	assert.True(t, bytes.HasPrefix(res.Logo, []byte("\x89PNG\r\n\x1a\n")), "logo is not a PNG")
	assert.NotEmpty(t, res.Font)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		res     Resources
		wantErr string
	}{
		{"missing logo", Resources{Font: []byte{1}}, "logo is empty"},
		{"missing font", Resources{Logo: []byte{1}}, "font is empty"},
		{"both missing", Resources{}, "logo is empty\nassets: font is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.res.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
