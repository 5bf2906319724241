//go:build !unix

package db

func errnoCode(error) (string, bool) {
	return "", false
}
