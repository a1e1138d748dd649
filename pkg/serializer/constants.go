package serializer

// StdoutURI is the special output path indicating data should be written
// to stdout.
const StdoutURI = "-"
