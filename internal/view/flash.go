// Package view carries the small amount of state that travels between a
// redirect and the next render: flash messages and form re-fill values.
package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyEmail    = "form_email"
)

// FlashData is what layouts render as banner messages.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, _ := session.Get(flashSessionName, c)

	// Flashes() retrieves and then clears the flashes from the session;
	// the save below persists the clearing.
	for _, f := range sess.Flashes(flashKeySuccess) {
		if msg, ok := f.(string); ok {
			data.Success = append(data.Success, msg)
		}
	}
	for _, f := range sess.Flashes(flashKeyError) {
		if msg, ok := f.(string); ok {
			data.Error = append(data.Error, msg)
		}
	}
	if len(data.Success) > 0 || len(data.Error) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

// RememberEmail stashes the submitted email so a failed login re-renders
// with it pre-filled.
func RememberEmail(c echo.Context, email string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(email, flashKeyEmail)
	_ = sess.Save(c.Request(), c.Response())
}

// RecallEmail consumes the stashed email, if any.
func RecallEmail(c echo.Context) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	flashes := sess.Flashes(flashKeyEmail)
	if len(flashes) == 0 {
		return ""
	}
	// Save to clear the consumed flash.
	_ = sess.Save(c.Request(), c.Response())
	if email, ok := flashes[0].(string); ok {
		return email
	}
	return ""
}
