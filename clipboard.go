package main

import (
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

// Clipboard copies text snapshots. It degrades to a no-op when the
// platform clipboard is unavailable (e.g. headless X11).
type Clipboard struct {
	ok     bool
	logger *zap.SugaredLogger
}

func NewClipboard(logger *zap.SugaredLogger) *Clipboard {
	c := &Clipboard{logger: logger.Named("clipboard")}
	if err := clipboard.Init(); err != nil {
		c.logger.Warnw("clipboard unavailable", "error", err)
		return c
	}
	c.ok = true
	return c
}

func (c *Clipboard) Copy(s string) {
	if !c.ok {
		c.logger.Warnw("snapshot not copied, clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	c.logger.Infow("copied snapshot to clipboard", "bytes", len(s))
}
