package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTokenAction(t *testing.T) {
	tests := []struct {
		name    string
		hasRow  bool
		stored  string
		device  string
		granted bool
		want    TokenAction
	}{
		{"first grant registers", false, "", "tok-a", true, TokenRegister},
		{"no row and no permission", false, "", "tok-a", false, TokenNoop},
		{"no row and empty token", false, "", "", true, TokenNoop},
		{"same token is a noop", true, "tok-a", "tok-a", true, TokenNoop},
		{"new token rotates", true, "tok-a", "tok-b", true, TokenRotate},
		{"permission revoked clears", true, "tok-a", "tok-a", false, TokenClear},
		{"revoked with already empty token", true, "", "", false, TokenNoop},
		{"empty device token keeps stored", true, "tok-a", "", true, TokenNoop},
		{"login after logout rotates sentinel out", true, PushTokenLoggedOut, "tok-b", true, TokenRotate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTokenAction(tt.hasRow, tt.stored, tt.device, tt.granted)
			assert.Equal(t, tt.want, got)
		})
	}
}
