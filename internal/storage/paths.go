package storage

import "strings"

const legacyPublicPrefix = "/storage/v1/object/public/"

// PathFromPublicURL recovers the in-bucket path of an object from the public
// URL stored on a record. URLs produced by store and the
// /storage/v1/object/public/<bucket>/ form of imported records are both
// understood. It reports false when the URL does not point into bucket.
func PathFromPublicURL(store ObjectStore, bucket, publicURL string) (string, bool) {
	u, _, _ := strings.Cut(publicURL, "?")

	if store != nil {
		prefix := store.PublicURL(bucket, "")
		if rest, ok := strings.CutPrefix(u, prefix); ok && rest != "" {
			return rest, true
		}
	}

	marker := legacyPublicPrefix + bucket + "/"
	if i := strings.Index(u, marker); i >= 0 {
		if rest := u[i+len(marker):]; rest != "" {
			return rest, true
		}
	}
	return "", false
}
