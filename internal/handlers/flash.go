package handlers

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Message string
	Level   string // success, info, warning
}

const (
	flashMessageKey = "flash_message"
	flashLevelKey   = "flash_level"
)

// setFlash stores a message in the session to be consumed by the next
// page render.
func setFlash(c *gin.Context, message, level string) {
	sess := sessions.Default(c)
	sess.Set(flashMessageKey, message)
	sess.Set(flashLevelKey, level)
	if err := sess.Save(); err != nil {
		log.Printf("Failed to save flash message: %v", err)
	}
}

// consumeFlash pops the pending flash message, if any.
func consumeFlash(c *gin.Context) *Flash {
	sess := sessions.Default(c)
	raw := sess.Get(flashMessageKey)
	if raw == nil {
		return nil
	}

	message, _ := raw.(string)
	level, _ := sess.Get(flashLevelKey).(string)
	sess.Delete(flashMessageKey)
	sess.Delete(flashLevelKey)
	if err := sess.Save(); err != nil {
		log.Printf("Failed to clear flash message: %v", err)
	}

	if level == "" {
		level = "info"
	}
	return &Flash{Message: message, Level: level}
}
