package template

// Labels maps well-known placeholder names to display labels.
var Labels = map[string]string{
	"target":   "Target",
	"port":     "Port",
	"lhost":    "LHOST",
	"lport":    "LPORT",
	"rhost":    "RHOST",
	"rport":    "RPORT",
	"domain":   "Domain",
	"iface":    "Interface",
	"protocol": "Protocol",
	"file":     "File path",
	"script":   "Script",
}

// Label returns the display label for a placeholder, or the name itself.
func Label(name string) string {
	if l, ok := Labels[name]; ok {
		return l
	}
	return name
}
