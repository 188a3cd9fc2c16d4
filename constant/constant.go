package constant

var (
	Version = "v0.1.0"
	Commit  = ""
)
