package kanoclient

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity held while logged in. It is also the
// payload encrypted into the offline cache, so its JSON shape is part of the
// cache format.
type Session struct {
	Username      string   `json:"username"`
	UserID        string   `json:"userId"`
	Token         string   `json:"token"`
	TokenExpiryMs int64    `json:"tokenExpiryMs"`
	Roles         []string `json:"roles"`
}

// authData is the data portion of the login/create response envelope.
// Duration is a millisecond count sent as a string.
type authData struct {
	Duration string `json:"duration"`
	Token    string `json:"token"`
	User     struct {
		ID    string   `json:"id"`
		Roles []string `json:"roles"`
	} `json:"user"`
}

// sessionFromAuthData builds the session for username out of the server's
// auth payload. Token expiry comes from the duration field; when that is
// absent or malformed, the token's own exp claim is used instead.
func sessionFromAuthData(username string, data []byte, now time.Time) (*Session, error) {
	var payload authData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("auth response carries no token")
	}

	expiry, ok := expiryFromDuration(payload.Duration, now)
	if !ok {
		expiry = expiryFromToken(payload.Token)
	}

	return &Session{
		Username:      username,
		UserID:        payload.User.ID,
		Token:         payload.Token,
		TokenExpiryMs: expiry,
		Roles:         payload.User.Roles,
	}, nil
}

func expiryFromDuration(duration string, now time.Time) (int64, bool) {
	if duration == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(duration, 10, 64)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return now.UnixMilli() + ms, true
}

// expiryFromToken reads the exp claim without verifying the signature; the
// client has no verification key and only needs the bookkeeping value.
// The raw claim is read directly because the parsed representation rounds
// to whole seconds and exp may carry fractional ones. Returns 0 when the
// token is not a parsable JWT or carries no numeric exp.
func expiryFromToken(token string) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	return int64(exp * 1000)
}
