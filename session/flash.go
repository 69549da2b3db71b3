package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-shot status string shown on the next rendered
// page, with a Bootstrap-style level ("success", "danger", "info").
type FlashMessage struct {
	Level   string
	Message string
}

// Flash queues a message for the next rendered page.
func Flash(c *gin.Context, level, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(FlashMessage{Level: level, Message: message})
	_ = sess.Save()
}

// PopFlashes consumes all pending messages. Only called when a page
// actually renders, so messages survive intermediate redirects.
func PopFlashes(c *gin.Context) []FlashMessage {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	flashes := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(FlashMessage); ok {
			flashes = append(flashes, msg)
		}
	}
	return flashes
}
