package ctxkeys

type Key int

const (
	AccessLevel Key = iota
	Locale          // string: negotiated base language, e.g. "de"
	Assets          // func(name string) string: versioned URL of an embedded asset
)
