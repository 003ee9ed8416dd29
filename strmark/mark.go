package strmark

// Mark carries a string as whitespace text.
type Mark interface {
	Encode(src string) (text string, err error)
	Decode(text string) (src string, err error)
}
