//go:build amd64 || arm64
// +build amd64 arm64

package binary

// Str2Bytes aliases the string's backing storage. Callers must not hold the
// returned slice past the write it feeds.
func Str2Bytes(str string) []byte {
	return unsafeStr2Bytes(str)
}
