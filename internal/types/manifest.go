package types

// Manifest is an already-parsed artifact listing: each downloadable
// archive URL maps to the ordered property bags published for it. A
// bag is the parsed source.properties content with lowercased keys;
// entries without one carry an empty bag.
type Manifest map[string][]map[string]string

// Checksums maps an artifact URL to its published SHA-256 digest, used
// to verify a downloaded archive before installation.
type Checksums map[string]string
