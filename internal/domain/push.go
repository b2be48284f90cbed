package domain

// TokenAction is the transition to apply to a user's push setting after
// comparing the stored token with the device's current token and permission.
type TokenAction int

const (
	TokenNoop TokenAction = iota
	TokenRegister
	TokenRotate
	TokenClear
)

// ResolveTokenAction decides the push-token transition:
//   - no row yet: register when permission is granted and a token exists
//   - permission revoked: clear the stored token, keep the granted categories
//   - token changed (reinstall, OS rotation, or the logout sentinel): rotate
func ResolveTokenAction(hasRow bool, storedToken, deviceToken string, granted bool) TokenAction {
	if !hasRow {
		if granted && deviceToken != "" {
			return TokenRegister
		}
		return TokenNoop
	}
	if !granted {
		if storedToken != "" {
			return TokenClear
		}
		return TokenNoop
	}
	if deviceToken == "" {
		return TokenNoop
	}
	if storedToken != deviceToken {
		return TokenRotate
	}
	return TokenNoop
}
