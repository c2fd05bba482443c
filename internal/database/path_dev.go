//go:build !production

package database

// Path keeps development builds on a throwaway database in the working
// directory.
func Path() (string, error) {
	return "takt_dev.db", nil
}
