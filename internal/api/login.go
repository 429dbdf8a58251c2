package api

import (
	"encoding/json"
	"fmt"
	"io"
)

// LoginRequest is the credential payload for POST /accounts/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DecodeLoginToken extracts the session token from a successful login
// response body of the form {"result": {"token": "..."}}.
func DecodeLoginToken(r io.Reader) (string, error) {
	var body struct {
		Result struct {
			Token string `json:"token"`
		} `json:"result"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return "", err
	}
	if body.Result.Token == "" {
		return "", fmt.Errorf("no token in login response")
	}
	return body.Result.Token, nil
}
