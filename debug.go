package shapedraw

import (
	"fmt"
	"log"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, state
// transitions, delivered events and ignored input are logged to stderr.
func (p *Plugin) SetDebugMode(enabled bool) {
	p.debug = enabled
	if enabled {
		p.pointer.logf = p.debugf
	} else {
		p.pointer.logf = nil
	}
}

// debugf prints a diagnostic line to stderr in debug mode.
func (p *Plugin) debugf(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[shapedraw] tick %d: %s\n", p.tick, fmt.Sprintf(format, args...))
}

// logf reports something a caller likely wants to know about, regardless of
// debug mode.
func (p *Plugin) logf(format string, args ...any) {
	log.Printf("shapedraw: "+format, args...)
}
