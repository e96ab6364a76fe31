package textutil

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode normalization form C, so that decomposed
// letters such as "å" match the precomposed "å" used in word tables.
// Already-composed input is returned unchanged without allocating.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
