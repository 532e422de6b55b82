package loxerrors

// local interface to be used with errors.Unwrap().
// errors packake does not define separate interface, relies on reflection instead.
type unwrapInterface interface {
	Unwrap() error
}

// LineError is an error tagged with the 1-based source line it refers to.
type LineError interface {
	error
	Line() int
}
