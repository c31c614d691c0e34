package common

import "os"

// GetenvDefault returns the value of the environment variable named by key,
// or def if the variable is not present. A variable set to the empty string
// is present and returns "".
func GetenvDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
