package model

// Bundle is a stored payload fetched back from the bundle server.
// ID is the opaque token the server assigned on upload; the client never
// interprets it.
type Bundle struct {
	ID      string
	Content []byte
}

// Receipt describes a completed upload.
// Signature is the hex HMAC-SHA256 of the payload and is empty when no
// signing key was configured.
type Receipt struct {
	ID        string
	Size      int64
	Signature string
}
