package login

import "encoding/json"

// TokenTypeBearer is the token type of every successful login.
const TokenTypeBearer = "Bearer"

// Result is the success payload of a login.
type Result struct {
	accessToken  string
	refreshToken string
	tokenType    string
}

// ResultOf returns a bearer result for the two tokens. Token contents are not
// checked, that is up to the authenticator.
func ResultOf(accessToken, refreshToken string) Result {
	return Result{
		accessToken:  accessToken,
		refreshToken: refreshToken,
		tokenType:    TokenTypeBearer,
	}
}

// AccessToken returns the access token.
func (r Result) AccessToken() string { return r.accessToken }

// RefreshToken returns the refresh token.
func (r Result) RefreshToken() string { return r.refreshToken }

// TokenType returns the token type.
func (r Result) TokenType() string { return r.tokenType }

type resultJSON struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{ //nolint:wrapcheck
		AccessToken:  r.accessToken,
		RefreshToken: r.refreshToken,
		TokenType:    r.tokenType,
	})
}
