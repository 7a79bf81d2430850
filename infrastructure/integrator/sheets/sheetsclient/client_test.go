package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteTitle(t *testing.T) {
	assert.Equal(t, "'2024'", quoteTitle("2024"))
	assert.Equal(t, "'Bob''s sheet'", quoteTitle("Bob's sheet"))
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name        string
		credentials string
		want        int
	}{
		{name: "default credentials", credentials: "  ", want: 1},
		{name: "inline json", credentials: `{"type":"service_account"}`, want: 2},
		{name: "file path", credentials: "service_account.json", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ClientOptions(tt.credentials), tt.want)
		})
	}
}
