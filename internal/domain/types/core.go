package types

// Fingerprint is a short digest of a network's canonical encoding, shown to
// users to tell two saved states apart.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
